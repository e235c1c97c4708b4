package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetgo/backend/internal/models"
	"meetgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// endMeetingStorage stubs only what EndMeeting touches; anything else hits
// the nil embedded interface.
type endMeetingStorage struct {
	storage.Storage

	meeting    *models.Meeting
	ended      bool
	publishErr error
}

func (s *endMeetingStorage) GetActiveMeeting(meetingID string) (*models.Meeting, error) {
	if s.meeting == nil || s.meeting.MeetingID != meetingID {
		return nil, errors.New("meeting not found")
	}
	return s.meeting, nil
}

func (s *endMeetingStorage) EndMeeting(meetingID string) error {
	s.ended = true
	return nil
}

func (s *endMeetingStorage) PublishEvent(meetingID string, ev models.Event) error {
	return s.publishErr
}

func newEndMeetingContext(t *testing.T, meetingID string, userID uint) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/meetings/"+meetingID+"/end", nil)
	c.Params = gin.Params{{Key: "meeting_id", Value: meetingID}}
	c.Set(ctxUserID, userID)
	c.Set(ctxUsername, "alice")
	return c, w
}

// Once the meeting is deactivated the handler must report success even when
// the pub/sub notification fails; a 500 would make callers retry against a
// meeting that no longer exists.
func TestEndMeeting_PublishFailureStillSucceeds(t *testing.T) {
	meetingID := "3f6b2c1a-8f7e-4a42-9d36-0f4de0a1b9a7"
	st := &endMeetingStorage{
		meeting:    &models.Meeting{MeetingID: meetingID, Title: "Standup", CreatorID: 7},
		publishErr: errors.New("redis unavailable"),
	}
	h := NewHandler(nil, st, nil, "test-secret")

	c, w := newEndMeetingContext(t, meetingID, 7)
	h.EndMeeting(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, st.ended, "the meeting must stay deactivated")
}

func TestEndMeeting_NonCreatorForbidden(t *testing.T) {
	meetingID := "3f6b2c1a-8f7e-4a42-9d36-0f4de0a1b9a7"
	st := &endMeetingStorage{
		meeting: &models.Meeting{MeetingID: meetingID, Title: "Standup", CreatorID: 7},
	}
	h := NewHandler(nil, st, nil, "test-secret")

	c, w := newEndMeetingContext(t, meetingID, 8)
	h.EndMeeting(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, st.ended)
}
