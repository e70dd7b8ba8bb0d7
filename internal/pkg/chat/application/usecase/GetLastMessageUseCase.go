package usecase

import (
	"context"
	"fmt"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/port"
)

// GetLastMessageInput wraps the chat whose newest message is requested.
type GetLastMessageInput struct {
	ChatID string
}

// GetLastMessageUseCase returns the newest message of a chat, or nil when the
// chat has no messages yet (the chat list preview case).
type GetLastMessageUseCase struct {
	Repo repository.ChatRepository
}

func NewGetLastMessageUseCase(repo repository.ChatRepository) *GetLastMessageUseCase {
	return &GetLastMessageUseCase{Repo: repo}
}

func (uc *GetLastMessageUseCase) Execute(ctx context.Context, in GetLastMessageInput) (*chat.Message, error) {
	if in.ChatID == "" {
		return nil, fmt.Errorf("chat_id is required")
	}
	msg, err := uc.Repo.GetLastMessage(ctx, in.ChatID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msg, nil
}
