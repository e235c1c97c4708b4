// Package chat implements the message pipeline applied to every chat line
// before it is persisted and broadcast: slash-command dispatch, blacklist
// censoring and emoji shortcode substitution.
package chat

import (
	"errors"
	"log"
	"strings"

	"meetgo/backend/internal/config"
)

// ErrEmptyMessage is returned for messages that are blank after trimming.
var ErrEmptyMessage = errors.New("empty chat message")

type Pipeline struct {
	censor *Censor
}

// NewPipeline builds the pipeline. With an empty blacklist the censor stage
// is skipped.
func NewPipeline(censoredWords []string) *Pipeline {
	p := &Pipeline{}
	if len(censoredWords) > 0 {
		censor, err := NewCensor(censoredWords, config.CensorMaskRune)
		if err != nil {
			log.Printf("ERROR: Failed to build chat censor, continuing without it: %v", err)
		} else {
			p.censor = censor
		}
	}
	return p
}

// Process runs a raw chat line through the pipeline. When Notice is set in
// the result the message is answered privately and nothing is broadcast.
func (p *Pipeline) Process(body string) (CommandResult, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return CommandResult{}, ErrEmptyMessage
	}
	if len([]rune(body)) > config.MaxChatMessageLen {
		body = string([]rune(body)[:config.MaxChatMessageLen])
	}

	result := CommandResult{Body: body}
	if IsCommand(body) {
		var err error
		result, err = DispatchCommand(body)
		if err != nil {
			return CommandResult{}, err
		}
		if result.Body == "" {
			return result, nil
		}
	}

	masked, found := p.censor.Apply(result.Body)
	if len(found) > 0 {
		log.Printf("Censored %d word(s) in chat message", len(found))
	}
	result.Body = SubstituteShortcodes(masked)
	return result, nil
}
