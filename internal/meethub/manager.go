package meethub

import (
	"errors"
	"log"

	"meetgo/backend/internal/chat"
	"meetgo/backend/internal/models"
	"meetgo/backend/internal/storage"

	"github.com/samber/lo"
)

// ManagerService is the central dispatcher for realtime meeting traffic.
// A single goroutine (Run) owns the client registry; everything reaches it
// through channels. Events are never delivered to local clients directly on
// the incoming path: they go out through redis pub/sub and come back on
// PubSubCh, so fanout behaves the same with one instance or several.
type ManagerService struct {
	// Rooms maps meeting UUID -> user id -> live client. At most one entry
	// per (meeting, user); a newer connection replaces the older one.
	Rooms map[string]map[uint]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	IncomingCh   chan Inbound
	PubSubCh     chan models.Event

	Storage  storage.Storage
	Pipeline *chat.Pipeline
}

func NewManagerService(s storage.Storage, pipeline *chat.Pipeline) *ManagerService {
	return &ManagerService{
		Rooms:        make(map[string]map[uint]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		IncomingCh:   make(chan Inbound),
		PubSubCh:     make(chan models.Event),
		Storage:      s,
		Pipeline:     pipeline,
	}
}

// Run is the hub's main loop. It must be the only goroutine touching Rooms.
func (m *ManagerService) Run() {
	for {
		select {
		case client := <-m.RegisterCh:
			m.registerClient(client)
		case client := <-m.UnregisterCh:
			m.unregisterClient(client)
		case in := <-m.IncomingCh:
			m.handleIncoming(in)
		case ev := <-m.PubSubCh:
			m.handleFanout(ev)
		}
	}
}

func (m *ManagerService) registerClient(client Client) {
	meetingID := client.GetMeetingID()
	room := m.Rooms[meetingID]
	if room == nil {
		room = make(map[uint]Client)
		m.Rooms[meetingID] = room
	}

	if old, ok := room[client.GetUserID()]; ok {
		// A reconnect replaces the stale connection.
		old.Close()
	}
	room[client.GetUserID()] = client

	if err := m.Storage.AddPresence(meetingID, client.GetUsername()); err != nil {
		log.Printf("ERROR: Failed to record presence for %s: %v", client.GetUsername(), err)
	}

	m.publish(models.Event{
		Type:      models.EventUserJoined,
		MeetingID: meetingID,
		Sender:    client.GetUsername(),
		Body:      client.GetUsername() + " joined the meeting",
		System:    true,
	})
}

func (m *ManagerService) unregisterClient(client Client) {
	meetingID := client.GetMeetingID()
	room := m.Rooms[meetingID]
	if room == nil {
		return
	}
	current, ok := room[client.GetUserID()]
	if !ok || current != client {
		// Already replaced by a newer connection; nothing to clean up.
		return
	}

	delete(room, client.GetUserID())
	if len(room) == 0 {
		delete(m.Rooms, meetingID)
	}
	client.Close()

	username := client.GetUsername()
	if err := m.Storage.RemovePresence(meetingID, username); err != nil {
		log.Printf("ERROR: Failed to remove presence for %s: %v", username, err)
	}
	_ = m.Storage.ClearTyping(meetingID, username)
	_ = m.Storage.ReleasePresenter(meetingID, username)

	m.publish(models.Event{
		Type:      models.EventUserLeft,
		MeetingID: meetingID,
		Sender:    username,
		Body:      username + " left the meeting",
		System:    true,
	})
}

// handleIncoming dispatches one event read from a client connection. Identity
// fields are stamped from the connection, never trusted from the payload.
func (m *ManagerService) handleIncoming(in Inbound) {
	// A replaced connection's read pump may still forward an in-flight event
	// after registerClient closed it. Answering it privately would write to
	// its closed send channel, so events from stale clients are dropped.
	if current, ok := m.Rooms[in.Client.GetMeetingID()][in.Client.GetUserID()]; !ok || current != in.Client {
		return
	}

	ev := in.Event
	ev.MeetingID = in.Client.GetMeetingID()
	ev.Sender = in.Client.GetUsername()
	ev.System = false

	switch ev.Type {
	case models.EventChat:
		m.handleChat(in.Client, ev)

	case models.EventTyping:
		if err := m.Storage.SetTyping(ev.MeetingID, ev.Sender); err != nil {
			log.Printf("ERROR: Failed to set typing state: %v", err)
		}
		m.publish(models.Event{Type: models.EventTyping, MeetingID: ev.MeetingID, Sender: ev.Sender})

	case models.EventTypingStop:
		_ = m.Storage.ClearTyping(ev.MeetingID, ev.Sender)
		m.publish(models.Event{Type: models.EventTypingStop, MeetingID: ev.MeetingID, Sender: ev.Sender})

	case models.EventToggleAudio:
		if ev.Muted == nil {
			m.notifyError(in.Client, "toggle_audio requires is_muted")
			return
		}
		if err := m.Storage.SetParticipantAudio(ev.MeetingID, in.Client.GetUserID(), *ev.Muted); err != nil {
			log.Printf("ERROR: Failed to update audio state for %s: %v", ev.Sender, err)
			return
		}
		m.publish(models.Event{Type: models.EventAudioToggled, MeetingID: ev.MeetingID, Sender: ev.Sender, Muted: ev.Muted})

	case models.EventToggleVideo:
		if ev.VideoOn == nil {
			m.notifyError(in.Client, "toggle_video requires is_video_on")
			return
		}
		if err := m.Storage.SetParticipantVideo(ev.MeetingID, in.Client.GetUserID(), *ev.VideoOn); err != nil {
			log.Printf("ERROR: Failed to update video state for %s: %v", ev.Sender, err)
			return
		}
		m.publish(models.Event{Type: models.EventVideoToggled, MeetingID: ev.MeetingID, Sender: ev.Sender, VideoOn: ev.VideoOn})

	case models.EventScreenShareStart:
		ok, err := m.Storage.ClaimPresenter(ev.MeetingID, ev.Sender)
		if err != nil {
			log.Printf("ERROR: Failed to claim presenter slot: %v", err)
			return
		}
		if !ok {
			m.notifyError(in.Client, "Someone else is already sharing their screen")
			return
		}
		m.publish(models.Event{Type: models.EventScreenShareStarted, MeetingID: ev.MeetingID, Sender: ev.Sender})

	case models.EventScreenShareStop:
		if err := m.Storage.ReleasePresenter(ev.MeetingID, ev.Sender); err != nil {
			log.Printf("ERROR: Failed to release presenter slot: %v", err)
		}
		m.publish(models.Event{Type: models.EventScreenShareStopped, MeetingID: ev.MeetingID, Sender: ev.Sender})

	default:
		if ev.IsSignal() {
			m.relaySignal(in.Client, ev)
			return
		}
		m.notifyError(in.Client, "unsupported event type: "+ev.Type)
	}
}

func (m *ManagerService) handleChat(client Client, ev models.Event) {
	result, err := m.Pipeline.Process(ev.Body)
	if err != nil {
		if errors.Is(err, chat.ErrUnknownCommand) {
			m.notifyError(client, "Unknown command. Type /help for the list.")
		}
		// Empty messages are dropped silently.
		return
	}
	if result.Notice != "" {
		m.notify(client, result.Notice)
		return
	}

	msg, err := m.Storage.SaveChatMessage(ev.MeetingID, client.GetUserID(), result.Body, result.IsAction)
	if err != nil {
		log.Printf("ERROR: Failed to save chat message for meeting %s: %v", ev.MeetingID, err)
		m.notifyError(client, "Your message could not be delivered")
		return
	}

	m.publish(models.Event{
		Type:      models.EventNewMessage,
		MeetingID: ev.MeetingID,
		Sender:    ev.Sender,
		Body:      result.Body,
		IsAction:  result.IsAction,
		Timestamp: msg.CreatedAt.Format("15:04"),
	})
}

// relaySignal forwards an offer/answer/candidate to the named target in the
// same meeting. The payload is passed through untouched.
func (m *ManagerService) relaySignal(client Client, ev models.Event) {
	if ev.Target == "" {
		m.notifyError(client, ev.Type+" requires a target")
		return
	}
	members, err := m.Storage.GetPresence(ev.MeetingID)
	if err != nil {
		log.Printf("ERROR: Failed to read presence for meeting %s: %v", ev.MeetingID, err)
		return
	}
	if !lo.Contains(members, ev.Target) {
		m.notifyError(client, "unknown signaling target: "+ev.Target)
		return
	}
	m.publish(ev)
}

// handleFanout delivers an event that arrived over redis pub/sub to the local
// clients of its meeting. Targeted events reach only the named participant.
func (m *ManagerService) handleFanout(ev models.Event) {
	room := m.Rooms[ev.MeetingID]
	for _, client := range room {
		if ev.Target != "" && client.GetUsername() != ev.Target {
			continue
		}
		m.deliver(client, ev)
	}

	switch ev.Type {
	case models.EventRemoved:
		if client, ok := m.findByUsername(room, ev.Target); ok {
			m.unregisterClient(client)
		}
	case models.EventMeetingEnded:
		m.closeRoom(ev.MeetingID)
	}
}

// deliver writes to the client's send channel without blocking the hub. A
// client that cannot keep up is dropped.
func (m *ManagerService) deliver(client Client, ev models.Event) {
	select {
	case client.GetSendChannel() <- ev:
	default:
		log.Printf("Dropping slow client %s in meeting %s", client.GetUsername(), client.GetMeetingID())
		m.unregisterClient(client)
	}
}

// closeRoom disconnects every local client of an ended meeting.
func (m *ManagerService) closeRoom(meetingID string) {
	room := m.Rooms[meetingID]
	for _, client := range room {
		client.Close()
		username := client.GetUsername()
		_ = m.Storage.RemovePresence(meetingID, username)
		_ = m.Storage.ClearTyping(meetingID, username)
		_ = m.Storage.ReleasePresenter(meetingID, username)
	}
	delete(m.Rooms, meetingID)
	if err := m.Storage.RemoveActiveMeeting(meetingID); err != nil {
		log.Printf("ERROR: Failed to remove active meeting %s: %v", meetingID, err)
	}
}

func (m *ManagerService) findByUsername(room map[uint]Client, username string) (Client, bool) {
	for _, client := range room {
		if client.GetUsername() == username {
			return client, true
		}
	}
	return nil, false
}

// publish hands an event to redis; it comes back on PubSubCh for delivery.
func (m *ManagerService) publish(ev models.Event) {
	if err := m.Storage.PublishEvent(ev.MeetingID, ev); err != nil {
		log.Printf("ERROR: Failed to publish %s event for meeting %s: %v", ev.Type, ev.MeetingID, err)
	}
}

// notify sends a private system message to one client, bypassing fanout.
func (m *ManagerService) notify(client Client, body string) {
	m.deliver(client, models.Event{
		Type:      models.EventNewMessage,
		MeetingID: client.GetMeetingID(),
		Body:      body,
		System:    true,
	})
}

// notifyError sends a private transient error notice to one client.
func (m *ManagerService) notifyError(client Client, body string) {
	m.deliver(client, models.Event{
		Type:      models.EventError,
		MeetingID: client.GetMeetingID(),
		Body:      body,
	})
}

// RecoverActiveMeetings reconciles the redis active-meeting set with the
// database after a restart, dropping ids whose meeting has ended.
func (m *ManagerService) RecoverActiveMeetings() {
	log.Println("Starting active meeting recovery...")

	meetingIDs, err := m.Storage.GetActiveMeetingIDs()
	if err != nil {
		log.Printf("ERROR: Failed to retrieve active meetings from storage: %v", err)
		return
	}

	recovered := 0
	for _, meetingID := range meetingIDs {
		if _, err := m.Storage.GetActiveMeeting(meetingID); err != nil {
			log.Printf("WARNING: Meeting %s active in redis but not in DB, removing.", meetingID)
			_ = m.Storage.RemoveActiveMeeting(meetingID)
			continue
		}
		recovered++
	}
	log.Printf("Recovery complete. %d active meeting(s).", recovered)
}
