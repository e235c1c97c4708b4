package chat

import (
	"errors"
	"strings"
)

// ErrUnknownCommand is returned for a slash command that is not registered.
// The sender gets a private error notice; nothing is broadcast or persisted.
var ErrUnknownCommand = errors.New("unknown chat command")

const helpText = "Available commands: /help, /me <action>, /shrug [text]"

// CommandResult is the outcome of dispatching a message that starts with "/".
type CommandResult struct {
	// Body is the replacement text to broadcast. Empty when the command only
	// produces a private notice.
	Body string
	// Notice goes back to the sender alone.
	Notice string
	// IsAction marks the body as an emote ("* name waves").
	IsAction bool
}

// DispatchCommand handles a slash command. Command names match exactly; there
// is no prefix matching.
func DispatchCommand(body string) (CommandResult, error) {
	name, rest, _ := strings.Cut(strings.TrimPrefix(body, "/"), " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "help":
		return CommandResult{Notice: helpText}, nil
	case "me":
		if rest == "" {
			return CommandResult{Notice: "Usage: /me <action>"}, nil
		}
		return CommandResult{Body: rest, IsAction: true}, nil
	case "shrug":
		shrug := `¯\_(ツ)_/¯`
		if rest != "" {
			shrug = rest + " " + shrug
		}
		return CommandResult{Body: shrug}, nil
	}
	return CommandResult{}, ErrUnknownCommand
}

// IsCommand reports whether the message should go through command dispatch.
func IsCommand(body string) bool {
	return strings.HasPrefix(body, "/")
}
