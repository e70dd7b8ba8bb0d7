package usecase

import (
	"context"
	"fmt"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/port"
)

// GetMessagesInput carries parameters to fetch a chat's message history.
type GetMessagesInput struct {
	ChatID string
	Limit  int
	Offset int
}

// GetMessagesUseCase fetches messages for a given chat.
type GetMessagesUseCase struct {
	Repo repository.ChatRepository
}

func NewGetMessagesUseCase(repo repository.ChatRepository) *GetMessagesUseCase {
	return &GetMessagesUseCase{Repo: repo}
}

func (uc *GetMessagesUseCase) Execute(ctx context.Context, in GetMessagesInput) ([]chat.Message, error) {
	if in.ChatID == "" {
		return nil, fmt.Errorf("chat_id is required")
	}
	msgs, err := uc.Repo.GetMessagesByChat(ctx, in.ChatID, in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
