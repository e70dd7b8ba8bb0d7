package chat

import (
	"errors"
	"time"
)

// Domain-level errors for chat behaviors
var (
	ErrNotParticipant  = errors.New("chat: user is not a participant in the chat")
	ErrSameParticipant = errors.New("chat: a chat needs two distinct participants")
	ErrChatExists      = errors.New("chat: a chat between these users already exists")
	ErrChatNotFound    = errors.New("chat: no chat found")
)

// Chat is a 1:1 thread between two users. The pair is stored sorted
// (UserA < UserB) so a pair of users maps to exactly one chat row.
type Chat struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UserA     string    `db:"user_a"`
	UserB     string    `db:"user_b"`
}

// NewChat builds a chat for the given pair, normalizing participant order.
func NewChat(user1ID, user2ID string) (*Chat, error) {
	if user1ID == "" || user2ID == "" {
		return nil, errors.New("chat: both participant ids are required")
	}
	if user1ID == user2ID {
		return nil, ErrSameParticipant
	}
	a, b := SortParticipants(user1ID, user2ID)
	return &Chat{UserA: a, UserB: b}, nil
}

// SortParticipants orders a participant pair canonically.
func SortParticipants(u1, u2 string) (string, string) {
	if u2 < u1 {
		return u2, u1
	}
	return u1, u2
}

// HasParticipant tells whether userID is part of this chat.
func (c *Chat) HasParticipant(userID string) bool {
	return c != nil && (c.UserA == userID || c.UserB == userID)
}

// Other returns the participant opposite to userID.
func (c *Chat) Other(userID string) (string, bool) {
	switch {
	case c == nil:
		return "", false
	case c.UserA == userID:
		return c.UserB, true
	case c.UserB == userID:
		return c.UserA, true
	default:
		return "", false
	}
}

// ParticipantIDs returns the sorted pair as a slice, the shape pushed to
// clients in new-chat notices.
func (c *Chat) ParticipantIDs() []string {
	return []string{c.UserA, c.UserB}
}
