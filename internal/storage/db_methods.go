package storage

import (
	"errors"
	"log"

	"meetgo/backend/internal/models"

	"gorm.io/gorm"
)

// SaveUser persists a user in PostgreSQL.
func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveMeeting persists a meeting. The BeforeCreate hook assigns the public
// meeting UUID on first save.
func (s *Service) SaveMeeting(meeting *models.Meeting) error {
	return s.DB.Save(meeting).Error
}

// GetActiveMeeting looks up a meeting by its public UUID. Ended meetings are
// treated the same as unknown ones.
func (s *Service) GetActiveMeeting(meetingID string) (*models.Meeting, error) {
	var meeting models.Meeting
	err := s.DB.Where("meeting_id = ? AND is_active = ?", meetingID, true).First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListActiveMeetings returns every active meeting, newest first.
func (s *Service) ListActiveMeetings() ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := s.DB.Where("is_active = ?", true).Order("created_at desc").Find(&meetings).Error
	return meetings, err
}

// EndMeeting deactivates a meeting by its public UUID.
func (s *Service) EndMeeting(meetingID string) error {
	return s.DB.Model(&models.Meeting{}).
		Where("meeting_id = ?", meetingID).
		Update("is_active", false).Error
}

func (s *Service) MeetingsCreatedBy(userID uint) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := s.DB.Where("creator_id = ? AND is_active = ?", userID, true).
		Order("created_at desc").Find(&meetings).Error
	return meetings, err
}

// MeetingsJoinedBy returns active meetings the user participates in but did
// not create.
func (s *Service) MeetingsJoinedBy(userID uint) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := s.DB.
		Joins("JOIN meeting_participants ON meeting_participants.meeting_id = meetings.id").
		Where("meeting_participants.user_id = ? AND meetings.is_active = ? AND meetings.creator_id <> ?",
			userID, true, userID).
		Where("meeting_participants.deleted_at IS NULL").
		Order("meetings.created_at desc").
		Find(&meetings).Error
	return meetings, err
}

// AddParticipant adds the user to the meeting. Joining a meeting the user is
// already in returns the existing row unchanged.
func (s *Service) AddParticipant(meetingDBID, userID uint) (*models.MeetingParticipant, error) {
	participant := models.MeetingParticipant{
		MeetingID: meetingDBID,
		UserID:    userID,
		IsVideoOn: true,
	}
	err := s.DB.
		Where("meeting_id = ? AND user_id = ?", meetingDBID, userID).
		FirstOrCreate(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *Service) GetParticipant(meetingDBID, userID uint) (*models.MeetingParticipant, error) {
	var participant models.MeetingParticipant
	err := s.DB.Preload("User").
		Where("meeting_id = ? AND user_id = ?", meetingDBID, userID).
		First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *Service) GetParticipantByID(id uint) (*models.MeetingParticipant, error) {
	var participant models.MeetingParticipant
	if err := s.DB.Preload("User").First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *Service) ListParticipants(meetingDBID uint) ([]models.MeetingParticipant, error) {
	var participants []models.MeetingParticipant
	err := s.DB.Preload("User").
		Where("meeting_id = ?", meetingDBID).
		Order("created_at asc").
		Find(&participants).Error
	return participants, err
}

func (s *Service) RemoveParticipant(id uint) error {
	return s.DB.Delete(&models.MeetingParticipant{}, id).Error
}

// SetParticipantAudio updates the muted flag, addressing the participant by
// the public meeting UUID the hub works with.
func (s *Service) SetParticipantAudio(meetingID string, userID uint, muted bool) error {
	return s.updateParticipant(meetingID, userID, "is_muted", muted)
}

func (s *Service) SetParticipantVideo(meetingID string, userID uint, videoOn bool) error {
	return s.updateParticipant(meetingID, userID, "is_video_on", videoOn)
}

func (s *Service) updateParticipant(meetingID string, userID uint, column string, value bool) error {
	sub := s.DB.Model(&models.Meeting{}).Select("id").Where("meeting_id = ?", meetingID)
	return s.DB.Model(&models.MeetingParticipant{}).
		Where("user_id = ? AND meeting_id = (?)", userID, sub).
		Update(column, value).Error
}

// SaveChatMessage persists a chat line and returns it with ID and CreatedAt
// filled in by GORM.
func (s *Service) SaveChatMessage(meetingID string, userID uint, body string, isAction bool) (*models.ChatMessage, error) {
	meeting, err := s.GetActiveMeeting(meetingID)
	if err != nil {
		return nil, err
	}

	msg := models.ChatMessage{
		MeetingID: meeting.ID,
		UserID:    userID,
		Body:      body,
		IsAction:  isAction,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		log.Printf("ERROR: Failed to save message for meeting %s: %v", meetingID, err)
		return nil, err
	}
	return &msg, nil
}

// GetChatHistory returns the chat lines of a meeting in send order.
func (s *Service) GetChatHistory(meetingDBID uint) ([]models.ChatMessage, error) {
	var history []models.ChatMessage
	err := s.DB.Preload("User").
		Where("meeting_id = ?", meetingDBID).
		Order("created_at asc").
		Find(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return history, nil
		}
		log.Printf("ERROR: Failed to get chat history for meeting %d: %v", meetingDBID, err)
		return nil, err
	}
	return history, nil
}
