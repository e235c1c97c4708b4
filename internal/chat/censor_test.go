package chat_test

import (
	"testing"

	"meetgo/backend/internal/chat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCensor(t *testing.T) *chat.Censor {
	t.Helper()
	censor, err := chat.NewCensor([]string{"badword", "slur"}, '*')
	require.NoError(t, err)
	return censor
}

func TestCensor_MasksBlacklistedWords(t *testing.T) {
	censor := newTestCensor(t)

	masked, found := censor.Apply("that is a badword right there")
	assert.Equal(t, "that is a ******* right there", masked)
	assert.Equal(t, []string{"badword"}, found)
}

func TestCensor_FoldsLeetSpeak(t *testing.T) {
	censor := newTestCensor(t)

	masked, found := censor.Apply("b4dw0rd")
	assert.Equal(t, "*******", masked)
	assert.Len(t, found, 1)
}

func TestCensor_SpansPunctuation(t *testing.T) {
	censor := newTestCensor(t)

	masked, found := censor.Apply("b.a.d.w.o.r.d")
	assert.Len(t, found, 1)
	assert.NotContains(t, masked, "b.a.d")
}

func TestCensor_CleanTextUntouched(t *testing.T) {
	censor := newTestCensor(t)

	input := "a perfectly fine sentence"
	masked, found := censor.Apply(input)
	assert.Equal(t, input, masked)
	assert.Empty(t, found)
}

func TestCensor_NilPassesThrough(t *testing.T) {
	var censor *chat.Censor

	masked, found := censor.Apply("badword")
	assert.Equal(t, "badword", masked)
	assert.Empty(t, found)
}
