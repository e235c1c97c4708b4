package storage

import (
	"encoding/json"
	"errors"

	"meetgo/backend/internal/config"
	"meetgo/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// Redis key layout. Everything here is volatile state that a restarted
// instance can rebuild or safely expire.
const (
	activeMeetingsKey = "meetings:active"
	eventChannelPfx   = "meeting:events:"
	presenceKeyPfx    = "meeting:presence:"
	typingKeyPfx      = "meeting:typing:"
	presenterKeyPfx   = "meeting:presenter:"
)

// PublishEvent pushes an event onto the meeting's pub/sub channel so every
// instance fans it out to its local clients.
func (s *Service) PublishEvent(meetingID string, ev models.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, eventChannelPfx+meetingID, payload).Err()
}

// SubscribeEvents subscribes to the event channels of every meeting.
func (s *Service) SubscribeEvents() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, eventChannelPfx+"*")
}

func (s *Service) AddActiveMeeting(meetingID string) error {
	return s.Redis.SAdd(s.Ctx, activeMeetingsKey, meetingID).Err()
}

func (s *Service) RemoveActiveMeeting(meetingID string) error {
	return s.Redis.SRem(s.Ctx, activeMeetingsKey, meetingID).Err()
}

func (s *Service) GetActiveMeetingIDs() ([]string, error) {
	return s.Redis.SMembers(s.Ctx, activeMeetingsKey).Result()
}

func (s *Service) AddPresence(meetingID, username string) error {
	return s.Redis.SAdd(s.Ctx, presenceKeyPfx+meetingID, username).Err()
}

func (s *Service) RemovePresence(meetingID, username string) error {
	return s.Redis.SRem(s.Ctx, presenceKeyPfx+meetingID, username).Err()
}

// GetPresence returns the usernames currently connected to the meeting,
// across all instances.
func (s *Service) GetPresence(meetingID string) ([]string, error) {
	return s.Redis.SMembers(s.Ctx, presenceKeyPfx+meetingID).Result()
}

// SetTyping marks the user as typing. The key carries a TTL so the indicator
// cannot stick if the client disconnects without sending typing_stop.
func (s *Service) SetTyping(meetingID, username string) error {
	key := typingKeyPfx + meetingID + ":" + username
	return s.Redis.Set(s.Ctx, key, "1", config.TypingTTL).Err()
}

func (s *Service) ClearTyping(meetingID, username string) error {
	key := typingKeyPfx + meetingID + ":" + username
	return s.Redis.Del(s.Ctx, key).Err()
}

// ClaimPresenter takes the single screen-share slot of a meeting. Returns
// false when someone else already holds it. Re-claiming your own slot is ok.
func (s *Service) ClaimPresenter(meetingID, username string) (bool, error) {
	key := presenterKeyPfx + meetingID
	ok, err := s.Redis.SetNX(s.Ctx, key, username, 0).Result()
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	holder, err := s.Redis.Get(s.Ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// Lost a race with a release; try once more.
		return s.Redis.SetNX(s.Ctx, key, username, 0).Result()
	}
	if err != nil {
		return false, err
	}
	return holder == username, nil
}

// ReleasePresenter frees the screen-share slot if the user holds it.
func (s *Service) ReleasePresenter(meetingID, username string) error {
	key := presenterKeyPfx + meetingID
	holder, err := s.Redis.Get(s.Ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}
	if holder != username {
		return nil
	}
	return s.Redis.Del(s.Ctx, key).Err()
}
