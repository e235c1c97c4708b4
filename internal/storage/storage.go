package storage

import (
	"context"

	"meetgo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is everything the handlers and the hub need from persistence.
// PostgreSQL (via GORM) owns the durable records, redis owns the volatile
// realtime state (presence, typing, presenter locks) and the pub/sub fanout.
type Storage interface {
	SaveUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)

	SaveMeeting(meeting *models.Meeting) error
	GetActiveMeeting(meetingID string) (*models.Meeting, error)
	ListActiveMeetings() ([]models.Meeting, error)
	EndMeeting(meetingID string) error
	MeetingsCreatedBy(userID uint) ([]models.Meeting, error)
	MeetingsJoinedBy(userID uint) ([]models.Meeting, error)

	AddParticipant(meetingDBID, userID uint) (*models.MeetingParticipant, error)
	GetParticipant(meetingDBID, userID uint) (*models.MeetingParticipant, error)
	GetParticipantByID(id uint) (*models.MeetingParticipant, error)
	ListParticipants(meetingDBID uint) ([]models.MeetingParticipant, error)
	RemoveParticipant(id uint) error
	SetParticipantAudio(meetingID string, userID uint, muted bool) error
	SetParticipantVideo(meetingID string, userID uint, videoOn bool) error

	SaveChatMessage(meetingID string, userID uint, body string, isAction bool) (*models.ChatMessage, error)
	GetChatHistory(meetingDBID uint) ([]models.ChatMessage, error)

	PublishEvent(meetingID string, ev models.Event) error
	SubscribeEvents() *redis.PubSub

	AddActiveMeeting(meetingID string) error
	RemoveActiveMeeting(meetingID string) error
	GetActiveMeetingIDs() ([]string, error)

	AddPresence(meetingID, username string) error
	RemovePresence(meetingID, username string) error
	GetPresence(meetingID string) ([]string, error)

	SetTyping(meetingID, username string) error
	ClearTyping(meetingID, username string) error

	ClaimPresenter(meetingID, username string) (bool, error)
	ReleasePresenter(meetingID, username string) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
