package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialConnection upgrades a real websocket and hands back the server-side
// Connection with its write loop running.
func dialConnection(t *testing.T) *Connection {
	t.Helper()
	upgrader := websocket.Upgrader{}
	conns := make(chan *Connection, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewConnection(ws)
		conn.Start()
		conns <- conn
	}))
	t.Cleanup(server.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err, "failed to dial test websocket server")
	t.Cleanup(func() { _ = client.Close() })

	return <-conns
}

func TestSendAfterCloseReturnsError(t *testing.T) {
	conn := dialConnection(t)
	conn.Close(websocket.CloseNormalClosure, "session closed")

	// Well past the send buffer size; every attempt must fail cleanly.
	for i := 0; i < 300; i++ {
		assert.Error(t, conn.Send([]byte("late payload")))
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	conn := dialConnection(t)
	conn.Close(websocket.CloseNormalClosure, "first")
	conn.Close(websocket.CloseGoingAway, "second")
	assert.Error(t, conn.Send([]byte("late payload")))
}

func TestDeliverToClosedConnectionReportsUndelivered(t *testing.T) {
	conn := dialConnection(t)

	presence := NewPresence()
	router := NewRouter(presence, zerolog.Nop())
	presence.Register("alice", conn)

	// Transport torn down between resolve and send: delivery degrades to
	// delivered=false, never a crash.
	conn.Close(websocket.CloseGoingAway, "client went away")
	notice := MessageNotice{ChatID: "chat-1", SenderID: "bob", Body: "late"}
	assert.False(t, router.NotifyNewMessage("alice", notice))
	assert.False(t, router.NotifyNewChat("alice", ChatNotice{ChatID: "chat-2", ParticipantIDs: []string{"alice", "bob"}}))
}
