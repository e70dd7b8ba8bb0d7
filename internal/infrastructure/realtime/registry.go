package realtime

// Session is the transport-level handle presence tracking binds a user to.
// *Connection implements it; tests substitute stubs.
type Session interface {
	ID() string
	Send(payload []byte) error
}

type binding struct {
	userID  string
	session Session
}

// registry holds the two presence indices: user id -> session id and
// session id -> binding. It is a passive store with no locking of its own;
// Presence owns all access and keeps both indices describing the same set
// of bindings at all times.
type registry struct {
	users    map[string]string
	sessions map[string]binding
}

func newRegistry() *registry {
	return &registry{
		users:    make(map[string]string),
		sessions: make(map[string]binding),
	}
}

// put binds userID to sess, superseding any previous binding for either side
// so the indices stay an exact bijection.
func (r *registry) put(userID string, sess Session) {
	if oldID, ok := r.users[userID]; ok && oldID != sess.ID() {
		delete(r.sessions, oldID)
	}
	if prev, ok := r.sessions[sess.ID()]; ok && prev.userID != userID {
		if cur, ok := r.users[prev.userID]; ok && cur == sess.ID() {
			delete(r.users, prev.userID)
		}
	}
	r.users[userID] = sess.ID()
	r.sessions[sess.ID()] = binding{userID: userID, session: sess}
}

func (r *registry) get(userID string) (Session, bool) {
	id, ok := r.users[userID]
	if !ok {
		return nil, false
	}
	b, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return b.session, true
}

// removeBySession drops the binding that references sessionID and reports the
// user that was freed. Disconnect notifications only carry the session id,
// hence the reverse lookup.
func (r *registry) removeBySession(sessionID string) (string, bool) {
	b, ok := r.sessions[sessionID]
	if !ok {
		return "", false
	}
	delete(r.sessions, sessionID)
	if cur, ok := r.users[b.userID]; ok && cur == sessionID {
		delete(r.users, b.userID)
	}
	return b.userID, true
}
