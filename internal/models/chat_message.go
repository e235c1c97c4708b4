package models

import "gorm.io/gorm"

// ChatMessage is a persisted chat line. The embedded gorm.Model provides the
// message ID and CreatedAt, which doubles as the displayed timestamp. Rows are
// written once and never updated.
type ChatMessage struct {
	gorm.Model

	// MeetingID references the internal meeting primary key.
	MeetingID uint `gorm:"not null;index:idx_meeting_msg"`
	// UserID is the author; zero for system notices.
	UserID uint `gorm:"index:idx_meeting_msg"`
	User   User
	// Body holds the message text after moderation and shortcode substitution.
	Body string `gorm:"type:text;not null"`
	// IsAction marks emote-style messages (rendered as "* name does a thing").
	IsAction bool `gorm:"default:false"`
	// IsSystem marks server-generated notices.
	IsSystem bool `gorm:"default:false"`
}
