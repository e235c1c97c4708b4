package meethub

import "meetgo/backend/internal/models"

// Client is the interface for one live connection into a meeting. It abstracts
// the underlying transport so the hub can manage clients uniformly (the only
// production implementation is the WebSocket one; tests use a mock).
type Client interface {
	// GetUserID returns the account id of the connected user.
	GetUserID() uint
	// GetUsername returns the display name other participants see.
	GetUsername() string
	// GetMeetingID returns the public UUID of the meeting the connection is
	// bound to. A client belongs to exactly one meeting for its lifetime.
	GetMeetingID() string

	// GetSendChannel returns the channel the hub writes outbound events to.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's outbound channel. Safe to call twice.
	Close()
}

// Inbound pairs an event with the connection it arrived on, so the hub can
// answer the sender privately and trust the connection's identity instead of
// anything inside the payload.
type Inbound struct {
	Client Client
	Event  models.Event
}
