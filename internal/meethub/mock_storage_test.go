package meethub_test

import (
	"meetgo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) SaveMeeting(meeting *models.Meeting) error {
	args := m.Called(meeting)
	return args.Error(0)
}

func (m *MockStorage) GetActiveMeeting(meetingID string) (*models.Meeting, error) {
	args := m.Called(meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meeting), args.Error(1)
}

func (m *MockStorage) ListActiveMeetings() ([]models.Meeting, error) {
	args := m.Called()
	return args.Get(0).([]models.Meeting), args.Error(1)
}

func (m *MockStorage) EndMeeting(meetingID string) error {
	args := m.Called(meetingID)
	return args.Error(0)
}

func (m *MockStorage) MeetingsCreatedBy(userID uint) ([]models.Meeting, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Meeting), args.Error(1)
}

func (m *MockStorage) MeetingsJoinedBy(userID uint) ([]models.Meeting, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Meeting), args.Error(1)
}

func (m *MockStorage) AddParticipant(meetingDBID, userID uint) (*models.MeetingParticipant, error) {
	args := m.Called(meetingDBID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingParticipant), args.Error(1)
}

func (m *MockStorage) GetParticipant(meetingDBID, userID uint) (*models.MeetingParticipant, error) {
	args := m.Called(meetingDBID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingParticipant), args.Error(1)
}

func (m *MockStorage) GetParticipantByID(id uint) (*models.MeetingParticipant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingParticipant), args.Error(1)
}

func (m *MockStorage) ListParticipants(meetingDBID uint) ([]models.MeetingParticipant, error) {
	args := m.Called(meetingDBID)
	return args.Get(0).([]models.MeetingParticipant), args.Error(1)
}

func (m *MockStorage) RemoveParticipant(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) SetParticipantAudio(meetingID string, userID uint, muted bool) error {
	args := m.Called(meetingID, userID, muted)
	return args.Error(0)
}

func (m *MockStorage) SetParticipantVideo(meetingID string, userID uint, videoOn bool) error {
	args := m.Called(meetingID, userID, videoOn)
	return args.Error(0)
}

func (m *MockStorage) SaveChatMessage(meetingID string, userID uint, body string, isAction bool) (*models.ChatMessage, error) {
	args := m.Called(meetingID, userID, body, isAction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *MockStorage) GetChatHistory(meetingDBID uint) ([]models.ChatMessage, error) {
	args := m.Called(meetingDBID)
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockStorage) PublishEvent(meetingID string, ev models.Event) error {
	args := m.Called(meetingID, ev)
	return args.Error(0)
}

func (m *MockStorage) SubscribeEvents() *redis.PubSub {
	args := m.Called()
	return args.Get(0).(*redis.PubSub)
}

func (m *MockStorage) AddActiveMeeting(meetingID string) error {
	args := m.Called(meetingID)
	return args.Error(0)
}

func (m *MockStorage) RemoveActiveMeeting(meetingID string) error {
	args := m.Called(meetingID)
	return args.Error(0)
}

func (m *MockStorage) GetActiveMeetingIDs() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) AddPresence(meetingID, username string) error {
	args := m.Called(meetingID, username)
	return args.Error(0)
}

func (m *MockStorage) RemovePresence(meetingID, username string) error {
	args := m.Called(meetingID, username)
	return args.Error(0)
}

func (m *MockStorage) GetPresence(meetingID string) ([]string, error) {
	args := m.Called(meetingID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) SetTyping(meetingID, username string) error {
	args := m.Called(meetingID, username)
	return args.Error(0)
}

func (m *MockStorage) ClearTyping(meetingID, username string) error {
	args := m.Called(meetingID, username)
	return args.Error(0)
}

func (m *MockStorage) ClaimPresenter(meetingID, username string) (bool, error) {
	args := m.Called(meetingID, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ReleasePresenter(meetingID, username string) error {
	args := m.Called(meetingID, username)
	return args.Error(0)
}
