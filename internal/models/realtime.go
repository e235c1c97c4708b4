package models

import "github.com/pion/webrtc/v4"

// Event types sent by clients over the meeting websocket.
const (
	EventChat             = "chat"
	EventTyping           = "typing"
	EventTypingStop       = "typing_stop"
	EventToggleAudio      = "toggle_audio"
	EventToggleVideo      = "toggle_video"
	EventScreenShareStart = "screen_share_start"
	EventScreenShareStop  = "screen_share_stop"
	EventOffer            = "webrtc_offer"
	EventAnswer           = "webrtc_answer"
	EventICECandidate     = "webrtc_ice_candidate"
)

// Event types produced by the hub.
const (
	EventUserJoined         = "user_joined"
	EventUserLeft           = "user_left"
	EventNewMessage         = "new_message"
	EventAudioToggled       = "audio_toggled"
	EventVideoToggled       = "video_toggled"
	EventScreenShareStarted = "screen_share_started"
	EventScreenShareStopped = "screen_share_stopped"
	EventMeetingEnded       = "meeting_ended"
	EventForceMute          = "force_mute"
	EventForceUnmute        = "force_unmute"
	EventRemoved            = "removed_from_meeting"
	EventError              = "error"
)

// Event is the envelope exchanged over the meeting websocket and the redis
// fanout channel. The hub stamps Sender and MeetingID from the authenticated
// connection; client-supplied values for those fields are ignored.
//
// For WebRTC relay events exactly one of SDP or Candidate is set and Target
// names the participant the payload is for. The server never inspects the SDP
// beyond decoding it; negotiation happens entirely between the two browsers.
type Event struct {
	Type      string `json:"type"`
	MeetingID string `json:"meeting_id"`
	Sender    string `json:"sender,omitempty"`
	Target    string `json:"target,omitempty"`
	Body      string `json:"body,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	IsAction  bool   `json:"is_action,omitempty"`
	System    bool   `json:"is_system,omitempty"`

	// Media state carried by audio_toggled / video_toggled.
	Muted   *bool `json:"is_muted,omitempty"`
	VideoOn *bool `json:"is_video_on,omitempty"`

	// Signaling payloads.
	SDP       *webrtc.SessionDescription `json:"sdp,omitempty"`
	Candidate *webrtc.ICECandidateInit   `json:"candidate,omitempty"`
}

// IsSignal reports whether the event is a WebRTC relay message, which must be
// delivered only to its named target.
func (e Event) IsSignal() bool {
	switch e.Type {
	case EventOffer, EventAnswer, EventICECandidate:
		return true
	}
	return false
}
