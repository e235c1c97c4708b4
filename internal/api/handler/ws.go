package handler

import (
	"net/http"

	"meetgo/backend/internal/config"
	"meetgo/backend/internal/meethub"
	"meetgo/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Lock down in production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and attaches it to the meeting named
// in the query. The caller must already be a participant of the meeting.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	meetingID, err := normalizeMeetingID(c.Query("meeting_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "meeting_id is required"})
		return
	}

	meeting, err := h.Storage.GetActiveMeeting(meetingID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Meeting not found or inactive"})
		return
	}
	if _, err := h.Storage.GetParticipant(meeting.ID, currentUserID(c)); err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You are not authorized to join this meeting"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &meethub.WebSocketClient{
		UserID:    currentUserID(c),
		Username:  currentUsername(c),
		MeetingID: meeting.MeetingID,
		Conn:      conn,
		Hub:       h.Hub,
		Send:      make(chan models.Event, config.SendBufferSize),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
