package usecase

import (
	"context"
	"fmt"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/port"
)

// SendMessageInput carries the data needed to persist a new message.
type SendMessageInput struct {
	ChatID   string
	SenderID string
	Body     string
}

// SendMessageResult is the persisted message plus the other participant, so
// the caller can hand the live copy to the message router.
type SendMessageResult struct {
	Message     *chat.Message
	RecipientID string
}

// SendMessageUseCase persists a message after checking the sender belongs to
// the chat. Routing the live copy is the caller's concern: persistence is the
// durability path, push is best-effort on top.
type SendMessageUseCase struct {
	Repo repository.ChatRepository
}

func NewSendMessageUseCase(repo repository.ChatRepository) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*SendMessageResult, error) {
	if in.ChatID == "" || in.SenderID == "" {
		return nil, fmt.Errorf("chat_id and sender_id are required")
	}

	c, err := uc.Repo.GetChat(ctx, in.ChatID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if c == nil {
		return nil, chat.ErrChatNotFound
	}
	recipient, ok := c.Other(in.SenderID)
	if !ok {
		return nil, chat.ErrNotParticipant
	}

	msg, err := chat.NewMessage(chat.Message{
		ChatID:   in.ChatID,
		SenderID: in.SenderID,
		Body:     in.Body,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id

	return &SendMessageResult{Message: msg, RecipientID: recipient}, nil
}
