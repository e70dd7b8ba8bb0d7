package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatSortsParticipants(t *testing.T) {
	c, err := NewChat("zoe", "adam")
	require.NoError(t, err)
	assert.Equal(t, "adam", c.UserA)
	assert.Equal(t, "zoe", c.UserB)
	assert.Equal(t, []string{"adam", "zoe"}, c.ParticipantIDs())
}

func TestNewChatRejectsSelfChat(t *testing.T) {
	_, err := NewChat("adam", "adam")
	assert.ErrorIs(t, err, ErrSameParticipant)
}

func TestOther(t *testing.T) {
	c, err := NewChat("adam", "zoe")
	require.NoError(t, err)

	other, ok := c.Other("adam")
	require.True(t, ok)
	assert.Equal(t, "zoe", other)

	other, ok = c.Other("zoe")
	require.True(t, ok)
	assert.Equal(t, "adam", other)

	_, ok = c.Other("mallory")
	assert.False(t, ok)
}

func TestNewMessageValidation(t *testing.T) {
	_, err := NewMessage(Message{ChatID: "c1", SenderID: "adam", Body: "   "})
	assert.Error(t, err, "whitespace-only body must be rejected")

	msg, err := NewMessage(Message{ChatID: "c1", SenderID: "adam", Body: "  hi  "})
	require.NoError(t, err)
	assert.Equal(t, "hi", msg.Body)
	assert.False(t, msg.CreatedAt.IsZero())
}
