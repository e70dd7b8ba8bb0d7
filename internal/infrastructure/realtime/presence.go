package realtime

import "sync"

// Presence tracks which users currently have a live realtime session and owns
// all mutation of the underlying registry. One lock guards both indices so no
// reader can observe a half-applied register/unregister.
type Presence struct {
	mu  sync.RWMutex
	reg *registry
}

func NewPresence() *Presence {
	return &Presence{reg: newRegistry()}
}

// Register binds userID to sess. If the user already has a session the old
// binding is silently superseded (last registration wins); the superseded
// transport session is left open but no longer receives routed events.
func (p *Presence) Register(userID string, sess Session) {
	p.mu.Lock()
	p.reg.put(userID, sess)
	p.mu.Unlock()
}

// Resolve returns the session currently serving userID, if any. Pure lookup.
func (p *Presence) Resolve(userID string) (Session, bool) {
	p.mu.RLock()
	sess, ok := p.reg.get(userID)
	p.mu.RUnlock()
	return sess, ok
}

// Unregister removes the binding referencing sessionID and returns the user
// that was freed. A session that disconnects before ever registering yields
// ("", false); that is a normal outcome, not an error.
func (p *Presence) Unregister(sessionID string) (string, bool) {
	p.mu.Lock()
	userID, ok := p.reg.removeBySession(sessionID)
	p.mu.Unlock()
	return userID, ok
}
