package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"meetgo/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type createMeetingRequest struct {
	Title       string   `json:"title" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=2000"`
	Tags        []string `json:"tags"`
}

type joinMeetingRequest struct {
	MeetingID string `json:"meeting_id" binding:"required"`
}

type participantView struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	IsMuted   bool   `json:"is_muted"`
	IsVideoOn bool   `json:"is_video_on"`
}

type messageView struct {
	Username  string `json:"username"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
	IsAction  bool   `json:"is_action,omitempty"`
	IsSystem  bool   `json:"is_system,omitempty"`
}

// normalizeMeetingID cleans up a pasted meeting id. Users paste ids with
// surrounding whitespace, embedded spaces, or with the dashes stripped;
// uuid.Parse accepts both dashed and dashless forms and we store the dashed
// canonical one.
func normalizeMeetingID(raw string) (string, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	id, err := uuid.Parse(cleaned)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// CreateMeeting creates a meeting and adds the creator as first participant.
func (h *Handler) CreateMeeting(c *gin.Context) {
	var req createMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting title is required"})
		return
	}

	meeting := models.Meeting{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   currentUserID(c),
		IsActive:    true,
		Tags:        pq.StringArray(req.Tags),
	}
	if err := h.Storage.SaveMeeting(&meeting); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting. Please try again."})
		return
	}
	if _, err := h.Storage.AddParticipant(meeting.ID, currentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting. Please try again."})
		return
	}
	if err := h.Storage.AddActiveMeeting(meeting.MeetingID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// JoinMeeting adds the caller to a meeting by its public id. Joining a
// meeting twice is not an error and does not duplicate the participant.
func (h *Handler) JoinMeeting(c *gin.Context) {
	var req joinMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting ID is required"})
		return
	}

	meetingID, err := normalizeMeetingID(req.MeetingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting not found or inactive. Please check the Meeting ID."})
		return
	}

	meeting, err := h.Storage.GetActiveMeeting(meetingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found or inactive. Please check the Meeting ID."})
		return
	}

	if _, err := h.Storage.AddParticipant(meeting.ID, currentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join meeting. Please try again."})
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// Dashboard lists the caller's created and joined meetings.
func (h *Handler) Dashboard(c *gin.Context) {
	userID := currentUserID(c)

	created, err := h.Storage.MeetingsCreatedBy(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	joined, err := h.Storage.MeetingsJoinedBy(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created_meetings": created,
		"joined_meetings":  joined,
	})
}

// MeetingRoom returns everything a client needs to render the meeting:
// the meeting itself, the participant roster and the chat history.
func (h *Handler) MeetingRoom(c *gin.Context) {
	meeting, participant, ok := h.authorizeParticipant(c)
	if !ok {
		return
	}

	participants, err := h.Storage.ListParticipants(meeting.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meeting"})
		return
	}
	history, err := h.Storage.GetChatHistory(meeting.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meeting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meeting": meeting,
		"participants": lo.Map(participants, func(p models.MeetingParticipant, _ int) participantView {
			return participantView{
				ID:        p.ID,
				Username:  p.User.Username,
				IsMuted:   p.IsMuted,
				IsVideoOn: p.IsVideoOn,
			}
		}),
		"messages": lo.Map(history, func(msg models.ChatMessage, _ int) messageView {
			return messageView{
				Username:  msg.User.Username,
				Body:      msg.Body,
				Timestamp: msg.CreatedAt.Format("15:04"),
				IsAction:  msg.IsAction,
				IsSystem:  msg.IsSystem,
			}
		}),
		"current_participant": participantView{
			ID:        participant.ID,
			Username:  currentUsername(c),
			IsMuted:   participant.IsMuted,
			IsVideoOn: participant.IsVideoOn,
		},
	})
}

// EndMeeting deactivates a meeting. Creator only; every connected client is
// notified and disconnected.
func (h *Handler) EndMeeting(c *gin.Context) {
	meetingID, err := normalizeMeetingID(c.Param("meeting_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}

	meeting, err := h.Storage.GetActiveMeeting(meetingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}
	if meeting.CreatorID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the meeting creator can end the meeting"})
		return
	}

	if err := h.Storage.EndMeeting(meetingID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end meeting"})
		return
	}

	ev := models.Event{
		Type:      models.EventMeetingEnded,
		MeetingID: meetingID,
		Body:      "Meeting has been ended by the host",
		System:    true,
	}
	if err := h.Storage.PublishEvent(meetingID, ev); err != nil {
		// The meeting is already deactivated; a 500 here would make callers
		// retry against a meeting that no longer exists. Clients converge on
		// their next reconnect attempt.
		log.Printf("ERROR: Failed to publish meeting_ended for %s: %v", meetingID, err)
	}

	h.Notifier.MeetingEnded(meeting.Title, currentUsername(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// authorizeParticipant resolves the meeting from the URL and checks that the
// caller participates in it.
func (h *Handler) authorizeParticipant(c *gin.Context) (*models.Meeting, *models.MeetingParticipant, bool) {
	meetingID, err := normalizeMeetingID(c.Param("meeting_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found or inactive"})
		return nil, nil, false
	}

	meeting, err := h.Storage.GetActiveMeeting(meetingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found or inactive"})
		return nil, nil, false
	}

	participant, err := h.Storage.GetParticipant(meeting.ID, currentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to join this meeting"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meeting"})
		}
		return nil, nil, false
	}
	return meeting, participant, true
}
