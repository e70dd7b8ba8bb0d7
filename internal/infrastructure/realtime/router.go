package realtime

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// Event names pushed to clients. These are the wire contract with the app and
// must stay stable.
const (
	EventReceiveMessage = "receive-message"
	EventNewChat        = "new-chat"
)

// MessageNotice is the payload of a receive-message event.
type MessageNotice struct {
	ChatID   string `json:"chat_id"`
	SenderID string `json:"sender_id"`
	Body     string `json:"body"`
}

// ChatNotice is the payload of a new-chat event, sent to the other participant
// when a shared chat is created. ParticipantIDs is the sorted pair.
type ChatNotice struct {
	ChatID         string   `json:"chat_id"`
	ParticipantIDs []string `json:"participant_ids"`
}

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Router pushes chat events to the live session of a recipient, if any.
// Delivery is best-effort: an offline recipient or a session torn down between
// resolve and send both yield delivered=false and nothing else. Durability is
// the persistence layer's job; the recipient catches up through the history API.
type Router struct {
	presence *Presence
	logger   zerolog.Logger
}

func NewRouter(presence *Presence, logger zerolog.Logger) *Router {
	return &Router{
		presence: presence,
		logger:   logger.With().Str("component", "realtime.Router").Logger(),
	}
}

// NotifyNewMessage pushes a message notice to recipientID and reports whether
// a live delivery happened.
func (r *Router) NotifyNewMessage(recipientID string, n MessageNotice) bool {
	return r.deliver(recipientID, EventReceiveMessage, n)
}

// NotifyNewChat pushes a chat-creation notice to recipientID.
func (r *Router) NotifyNewChat(recipientID string, n ChatNotice) bool {
	return r.deliver(recipientID, EventNewChat, n)
}

func (r *Router) deliver(recipientID string, event string, data any) bool {
	sess, ok := r.presence.Resolve(recipientID)
	if !ok {
		return false
	}
	payload, err := json.Marshal(envelope{Event: event, Data: data})
	if err != nil {
		r.logger.Error().Err(err).Str("event", event).Msg("encode event")
		return false
	}
	if err := sess.Send(payload); err != nil {
		// Session went away between resolve and send; same outcome as absent.
		r.logger.Debug().Str("recipient", recipientID).Str("event", event).Msg("session gone, event dropped")
		return false
	}
	return true
}
