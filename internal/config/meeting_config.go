package config

import "time"

const (
	// Auth
	TokenTTL  = 72 * time.Hour
	JWTIssuer = "meetgo-service"

	MinPasswordLen = 8

	// Meetings
	MaxTitleLen       = 100
	MaxDescriptionLen = 2000

	// Chat
	MaxChatMessageLen = 2000
	CensorMaskRune    = '*'

	// Realtime
	TypingTTL      = 6 * time.Second
	SendBufferSize = 256
)
