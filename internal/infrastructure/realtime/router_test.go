package realtime

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*Router, *Presence) {
	presence := NewPresence()
	return NewRouter(presence, zerolog.Nop()), presence
}

func decodeEnvelope(t *testing.T, payload []byte) (string, json.RawMessage) {
	t.Helper()
	var env struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &env))
	return env.Event, env.Data
}

func TestDeliverToAbsentRecipient(t *testing.T) {
	router, _ := newTestRouter()

	delivered := router.NotifyNewMessage("nobody", MessageNotice{ChatID: "chat-1", SenderID: "alice", Body: "hi"})

	assert.False(t, delivered)
}

func TestDeliverToPresentRecipientExactlyOnce(t *testing.T) {
	router, presence := newTestRouter()
	c2 := newStubSession("c2")
	presence.Register("bob", c2)

	notice := MessageNotice{ChatID: "chat-1", SenderID: "alice", Body: "hello bob"}
	delivered := router.NotifyNewMessage("bob", notice)

	require.True(t, delivered)
	payloads := c2.payloads()
	require.Len(t, payloads, 1)

	event, data := decodeEnvelope(t, payloads[0])
	assert.Equal(t, EventReceiveMessage, event)

	var got MessageNotice
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, notice, got)
}

func TestDeliverToStaleSession(t *testing.T) {
	// The session is resolved but the transport is already torn down; the
	// failure must be swallowed and reported as a plain miss.
	router, presence := newTestRouter()
	stale := newStubSession("c1")
	stale.err = errors.New("transport torn down")
	presence.Register("bob", stale)

	delivered := router.NotifyNewMessage("bob", MessageNotice{ChatID: "chat-1", SenderID: "alice", Body: "hi"})

	assert.False(t, delivered)
}

func TestMessageFlowBetweenTwoUsers(t *testing.T) {
	router, presence := newTestRouter()
	c1 := newStubSession("c1")
	c2 := newStubSession("c2")
	presence.Register("alice", c1)
	presence.Register("bob", c2)

	notice := MessageNotice{ChatID: "chat-1", SenderID: "alice", Body: "are you there?"}
	require.True(t, router.NotifyNewMessage("bob", notice))
	require.Len(t, c2.payloads(), 1)
	assert.Empty(t, c1.payloads(), "sender's session must not receive the routed event")

	// Bob disconnects; the next event is dropped without any send.
	_, ok := presence.Unregister("c2")
	require.True(t, ok)

	delivered := router.NotifyNewMessage("bob", MessageNotice{ChatID: "chat-1", SenderID: "alice", Body: "gone?"})
	assert.False(t, delivered)
	assert.Len(t, c2.payloads(), 1)
}

func TestReconnectRoutesToNewestSession(t *testing.T) {
	router, presence := newTestRouter()
	c1 := newStubSession("c1")
	c2 := newStubSession("c2")
	presence.Register("alice", c1)
	presence.Register("alice", c2) // reconnect without an explicit disconnect of c1

	require.True(t, router.NotifyNewMessage("alice", MessageNotice{ChatID: "chat-1", SenderID: "bob", Body: "hi"}))

	assert.Empty(t, c1.payloads())
	assert.Len(t, c2.payloads(), 1)
}

func TestNewChatNoticeCarriesSortedPair(t *testing.T) {
	router, presence := newTestRouter()
	c2 := newStubSession("c2")
	presence.Register("bob", c2)

	delivered := router.NotifyNewChat("bob", ChatNotice{
		ChatID:         "chat-9",
		ParticipantIDs: []string{"alice", "bob"},
	})

	require.True(t, delivered)
	payloads := c2.payloads()
	require.Len(t, payloads, 1)

	event, data := decodeEnvelope(t, payloads[0])
	assert.Equal(t, EventNewChat, event)

	var got ChatNotice
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "chat-9", got.ChatID)
	assert.Equal(t, []string{"alice", "bob"}, got.ParticipantIDs)
}
