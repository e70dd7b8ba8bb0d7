package chat

import (
	"errors"
	"strings"
	"time"
)

// Message is an immutable log entry in a chat.
type Message struct {
	ID        string    `db:"id"`
	ChatID    string    `db:"chat_id"`
	SenderID  string    `db:"sender_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func NewMessage(m Message) (*Message, error) {
	if m.ChatID == "" || m.SenderID == "" {
		return nil, errors.New("chat_id and sender_id are required")
	}

	m.Body = strings.TrimSpace(m.Body)
	if m.Body == "" {
		return nil, errors.New("message body must not be empty")
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	return &m, nil
}
