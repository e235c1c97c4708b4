package handler

import (
	"net/http"

	"meetgo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type adminActionRequest struct {
	MeetingID     string `json:"meeting_id" binding:"required"`
	ParticipantID uint   `json:"participant_id" binding:"required"`
}

// MuteParticipant mutes a participant on behalf of the host.
func (h *Handler) MuteParticipant(c *gin.Context) {
	h.setParticipantMuted(c, true)
}

// UnmuteParticipant lifts a host mute.
func (h *Handler) UnmuteParticipant(c *gin.Context) {
	h.setParticipantMuted(c, false)
}

func (h *Handler) setParticipantMuted(c *gin.Context, muted bool) {
	meeting, participant, ok := h.authorizeAdminAction(c)
	if !ok {
		return
	}

	if err := h.Storage.SetParticipantAudio(meeting.MeetingID, participant.UserID, muted); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update participant"})
		return
	}

	notice := "You have been muted by the host"
	eventType := models.EventForceMute
	if !muted {
		notice = "You have been unmuted by the host"
		eventType = models.EventForceUnmute
	}

	target := participant.User.Username
	h.publishAdminEvents(meeting.MeetingID,
		models.Event{
			Type:      eventType,
			MeetingID: meeting.MeetingID,
			Target:    target,
			Body:      notice,
			System:    true,
		},
		models.Event{
			Type:      models.EventAudioToggled,
			MeetingID: meeting.MeetingID,
			Sender:    target,
			Muted:     &muted,
		})

	if muted {
		h.Notifier.ParticipantMuted(meeting.Title, target, currentUsername(c))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveParticipant kicks a participant out of the meeting.
func (h *Handler) RemoveParticipant(c *gin.Context) {
	meeting, participant, ok := h.authorizeAdminAction(c)
	if !ok {
		return
	}
	if participant.UserID == meeting.CreatorID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The host cannot be removed"})
		return
	}

	target := participant.User.Username
	// Notify before the row disappears, mirroring the leave notice order.
	h.publishAdminEvents(meeting.MeetingID, models.Event{
		Type:      models.EventRemoved,
		MeetingID: meeting.MeetingID,
		Target:    target,
		Body:      "You have been removed from the meeting by the host",
		System:    true,
	})

	if err := h.Storage.RemoveParticipant(participant.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove participant"})
		return
	}

	h.Notifier.ParticipantRemoved(meeting.Title, target, currentUsername(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// authorizeAdminAction parses the request and checks the caller is the
// meeting creator and the participant belongs to the meeting.
func (h *Handler) authorizeAdminAction(c *gin.Context) (*models.Meeting, *models.MeetingParticipant, bool) {
	var req adminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meeting_id and participant_id are required"})
		return nil, nil, false
	}

	meetingID, err := normalizeMeetingID(req.MeetingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return nil, nil, false
	}
	meeting, err := h.Storage.GetActiveMeeting(meetingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return nil, nil, false
	}
	if meeting.CreatorID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return nil, nil, false
	}

	participant, err := h.Storage.GetParticipantByID(req.ParticipantID)
	if err != nil || participant.MeetingID != meeting.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return nil, nil, false
	}
	return meeting, participant, true
}

func (h *Handler) publishAdminEvents(meetingID string, events ...models.Event) {
	for _, ev := range events {
		if err := h.Storage.PublishEvent(meetingID, ev); err != nil {
			// The DB change already happened; the client state converges on
			// the next roster fetch.
			continue
		}
	}
}
