package chat_test

import (
	"testing"

	"meetgo/backend/internal/chat"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteShortcodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single shortcode", "good job :thumbsup:", "good job 👍"},
		{"multiple shortcodes", ":wave: hello :smile:", "👋 hello 😄"},
		{"adjacent shortcodes", ":fire::fire:", "🔥🔥"},
		{"plus alias", "nice :+1:", "nice 👍"},
		{"unknown shortcode kept", "see :nonexistent: here", "see :nonexistent: here"},
		{"no shortcodes", "plain text", "plain text"},
		{"lone colons", "time: 15:04", "time: 15:04"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chat.SubstituteShortcodes(tt.input))
		})
	}
}

// Substitution must be idempotent: running it over already substituted text
// changes nothing.
func TestSubstituteShortcodes_Idempotent(t *testing.T) {
	inputs := []string{
		"hello :smile: :tada:",
		":+1::-1:",
		"no codes at all",
		"mixed :rocket: and :unknown:",
	}
	for _, input := range inputs {
		once := chat.SubstituteShortcodes(input)
		twice := chat.SubstituteShortcodes(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}
