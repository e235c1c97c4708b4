package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq" // needed for pq.StringArray
	"gorm.io/gorm"
)

// Meeting is a video meeting room. MeetingID is the public identifier shared
// with participants; the numeric primary key stays internal.
type Meeting struct {
	gorm.Model

	MeetingID   string         `gorm:"type:uuid;uniqueIndex;not null" json:"meeting_id"`
	Title       string         `gorm:"size:100;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	CreatorID   uint           `gorm:"not null;index" json:"creator_id"`
	Creator     User           `json:"-"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
}

// BeforeCreate is a GORM hook that assigns the public meeting UUID if it has
// not been set yet.
func (m *Meeting) BeforeCreate(tx *gorm.DB) (err error) {
	if m.MeetingID == "" {
		m.MeetingID = uuid.New().String()
	}
	return
}

// MeetingParticipant links a user to a meeting and carries the media state the
// rest of the room sees. At most one row exists per (meeting, user) pair.
type MeetingParticipant struct {
	gorm.Model

	MeetingID uint `gorm:"not null;uniqueIndex:idx_meeting_user" json:"-"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_meeting_user" json:"user_id"`
	User      User `json:"user"`
	IsMuted   bool `gorm:"default:false" json:"is_muted"`
	IsVideoOn bool `gorm:"default:true" json:"is_video_on"`
}
