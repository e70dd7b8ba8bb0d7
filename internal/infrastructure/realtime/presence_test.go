package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSession records pushed payloads in place of a websocket connection.
type stubSession struct {
	id  string
	err error

	mu   sync.Mutex
	sent [][]byte
}

func newStubSession(id string) *stubSession { return &stubSession{id: id} }

func (s *stubSession) ID() string { return s.id }

func (s *stubSession) Send(payload []byte) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	s.sent = append(s.sent, payload)
	s.mu.Unlock()
	return nil
}

func (s *stubSession) payloads() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.sent))
	copy(out, s.sent)
	return out
}

func TestRegisterThenResolve(t *testing.T) {
	p := NewPresence()
	c1 := newStubSession("c1")

	p.Register("alice", c1)

	sess, ok := p.Resolve("alice")
	require.True(t, ok)
	assert.Equal(t, "c1", sess.ID())

	_, ok = p.Resolve("bob")
	assert.False(t, ok, "unregistered user must resolve as absent")
}

func TestLastRegistrationWins(t *testing.T) {
	p := NewPresence()
	c1 := newStubSession("c1")
	c2 := newStubSession("c2")

	p.Register("alice", c1)
	p.Register("alice", c2)

	sess, ok := p.Resolve("alice")
	require.True(t, ok)
	assert.Equal(t, "c2", sess.ID())

	// The superseded session no longer occupies a registry slot, so its
	// eventual disconnect must not evict the new binding.
	userID, ok := p.Unregister("c1")
	assert.False(t, ok)
	assert.Empty(t, userID)

	sess, ok = p.Resolve("alice")
	require.True(t, ok)
	assert.Equal(t, "c2", sess.ID())
}

func TestUnregisterClearsExactlyOneEntry(t *testing.T) {
	p := NewPresence()
	p.Register("alice", newStubSession("c1"))
	p.Register("bob", newStubSession("c2"))

	userID, ok := p.Unregister("c1")
	require.True(t, ok)
	assert.Equal(t, "alice", userID)

	_, ok = p.Resolve("alice")
	assert.False(t, ok)

	// Second unregister for the same session is a no-op and must not touch
	// anyone else's entry.
	_, ok = p.Unregister("c1")
	assert.False(t, ok)

	sess, ok := p.Resolve("bob")
	require.True(t, ok)
	assert.Equal(t, "c2", sess.ID())
}

func TestUnregisterUnboundSession(t *testing.T) {
	p := NewPresence()
	userID, ok := p.Unregister("never-registered")
	assert.False(t, ok)
	assert.Empty(t, userID)
}

func TestReRegisterSameSessionUnderNewUser(t *testing.T) {
	// A client mis-registering an already-bound session under a different
	// identity is accepted; the indices must stay consistent.
	p := NewPresence()
	c1 := newStubSession("c1")

	p.Register("alice", c1)
	p.Register("bob", c1)

	_, ok := p.Resolve("alice")
	assert.False(t, ok, "old identity must be released")

	sess, ok := p.Resolve("bob")
	require.True(t, ok)
	assert.Equal(t, "c1", sess.ID())

	userID, ok := p.Unregister("c1")
	require.True(t, ok)
	assert.Equal(t, "bob", userID)
}

func TestConcurrentRegisterUnregister(t *testing.T) {
	p := NewPresence()

	const users = 64
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uid := fmt.Sprintf("user-%d", i)
			first := newStubSession(fmt.Sprintf("conn-%d-a", i))
			second := newStubSession(fmt.Sprintf("conn-%d-b", i))
			p.Register(uid, first)
			p.Register(uid, second)
			p.Unregister(first.ID())
		}(i)
	}
	wg.Wait()

	for i := 0; i < users; i++ {
		uid := fmt.Sprintf("user-%d", i)
		sess, ok := p.Resolve(uid)
		require.True(t, ok, "user %s lost its entry", uid)
		assert.Equal(t, fmt.Sprintf("conn-%d-b", i), sess.ID())
	}
}
