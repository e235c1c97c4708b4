package meethub_test

import "meetgo/backend/internal/models"

type MockClient struct {
	userID    uint
	username  string
	meetingID string
	closed    bool

	// RecvChannel captures everything the hub delivers to this client.
	RecvChannel chan models.Event
}

func newMockClient(userID uint, username, meetingID string) *MockClient {
	return &MockClient{
		userID:      userID,
		username:    username,
		meetingID:   meetingID,
		RecvChannel: make(chan models.Event, 10),
	}
}

func (c *MockClient) GetUserID() uint      { return c.userID }
func (c *MockClient) GetUsername() string  { return c.username }
func (c *MockClient) GetMeetingID() string { return c.meetingID }

func (c *MockClient) GetSendChannel() chan<- models.Event {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

// Close mirrors the WebSocketClient contract: the send channel is closed, so
// any later hub write to it would panic.
func (c *MockClient) Close() {
	if !c.closed {
		c.closed = true
		close(c.RecvChannel)
	}
}
