package models_test

import (
	"reflect"
	"testing"

	"meetgo/backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// TestMeetingBeforeCreate_GeneratesUUID verifies the hook assigns a valid
// public meeting id.
func TestMeetingBeforeCreate_GeneratesUUID(t *testing.T) {
	meeting := &models.Meeting{Title: "Standup", CreatorID: 1}
	assert.Empty(t, meeting.MeetingID)

	err := meeting.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, meeting.MeetingID)

	parsed, parseErr := uuid.Parse(meeting.MeetingID)
	assert.NoError(t, parseErr)
	assert.NotEqual(t, uuid.Nil, parsed)
}

func TestMeetingBeforeCreate_PreservesExistingID(t *testing.T) {
	existing := uuid.New().String()
	meeting := &models.Meeting{MeetingID: existing, Title: "Retro", CreatorID: 2}

	err := meeting.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existing, meeting.MeetingID)
}

func TestMeetingBeforeCreate_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		meeting := &models.Meeting{Title: "m", CreatorID: 1}
		assert.NoError(t, meeting.BeforeCreate(nil))
		assert.NotContains(t, seen, meeting.MeetingID)
		seen[meeting.MeetingID] = true
	}
}

// TestMeetingStructTags guards the GORM tags the storage layer relies on.
func TestMeetingStructTags(t *testing.T) {
	meetingType := reflect.TypeOf(models.Meeting{})

	idField, found := meetingType.FieldByName("MeetingID")
	assert.True(t, found)
	assert.Contains(t, idField.Tag.Get("gorm"), "uniqueIndex")

	tagsField, found := meetingType.FieldByName("Tags")
	assert.True(t, found)
	assert.Contains(t, tagsField.Tag.Get("gorm"), "type:text[]")
	assert.IsType(t, pq.StringArray{}, reflect.New(tagsField.Type).Elem().Interface())

	participantType := reflect.TypeOf(models.MeetingParticipant{})
	meetingRef, found := participantType.FieldByName("MeetingID")
	assert.True(t, found)
	assert.Contains(t, meetingRef.Tag.Get("gorm"), "uniqueIndex:idx_meeting_user")
	userRef, found := participantType.FieldByName("UserID")
	assert.True(t, found)
	assert.Contains(t, userRef.Tag.Get("gorm"), "uniqueIndex:idx_meeting_user")
}
