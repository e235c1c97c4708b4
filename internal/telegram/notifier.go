// Package telegram posts operational notices (meeting lifecycle, host
// moderation actions) to a Telegram chat so operators see them without
// tailing logs. The bot is outbound-only.
package telegram

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier wraps the bot API. A nil *Notifier is valid and does nothing, so
// callers never have to check whether the bot is configured.
type Notifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewNotifier authenticates the bot. Returns an error when the token is
// rejected; callers treat an empty token as "notifications off" and keep a
// nil notifier instead.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)

	return &Notifier{BotAPI: bot, ChatID: chatID}, nil
}

// MeetingEnded reports that a host ended a meeting.
func (n *Notifier) MeetingEnded(title, host string) {
	n.send(fmt.Sprintf("Meeting %q ended by %s", title, host))
}

// ParticipantMuted reports a host mute action.
func (n *Notifier) ParticipantMuted(title, target, host string) {
	n.send(fmt.Sprintf("%s muted %s in meeting %q", host, target, title))
}

// ParticipantRemoved reports a kick.
func (n *Notifier) ParticipantRemoved(title, target, host string) {
	n.send(fmt.Sprintf("%s removed %s from meeting %q", host, target, title))
}

func (n *Notifier) send(text string) {
	if n == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.ChatID, text)
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send ops notification: %v", err)
	}
}
