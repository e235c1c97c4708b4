package chat_test

import (
	"strings"
	"testing"

	"meetgo/backend/internal/chat"
	"meetgo/backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestPipeline_PlainMessage(t *testing.T) {
	p := chat.NewPipeline([]string{"badword"})

	result, err := p.Process("you badword :fire:")
	assert.NoError(t, err)
	assert.Equal(t, "you ******* 🔥", result.Body)
	assert.False(t, result.IsAction)
}

func TestPipeline_CommandThenFormatting(t *testing.T) {
	p := chat.NewPipeline(nil)

	result, err := p.Process("/me dances :tada:")
	assert.NoError(t, err)
	assert.Equal(t, "dances 🎉", result.Body)
	assert.True(t, result.IsAction)
}

func TestPipeline_HelpIsPrivate(t *testing.T) {
	p := chat.NewPipeline(nil)

	result, err := p.Process("/help")
	assert.NoError(t, err)
	assert.Empty(t, result.Body)
	assert.NotEmpty(t, result.Notice)
}

func TestPipeline_UnknownCommand(t *testing.T) {
	p := chat.NewPipeline(nil)

	_, err := p.Process("/frobnicate now")
	assert.ErrorIs(t, err, chat.ErrUnknownCommand)
}

func TestPipeline_EmptyMessage(t *testing.T) {
	p := chat.NewPipeline(nil)

	_, err := p.Process("   \t  ")
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestPipeline_TruncatesLongMessages(t *testing.T) {
	p := chat.NewPipeline(nil)

	result, err := p.Process(strings.Repeat("x", config.MaxChatMessageLen+100))
	assert.NoError(t, err)
	assert.Len(t, []rune(result.Body), config.MaxChatMessageLen)
}
