package usecase

import (
	"context"
	"fmt"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/port"
)

// ListChatsInput wraps the user whose chats should be listed.
type ListChatsInput struct {
	UserID string
}

// ListChatsUseCase returns every chat the user participates in.
type ListChatsUseCase struct {
	Repo repository.ChatRepository
}

func NewListChatsUseCase(repo repository.ChatRepository) *ListChatsUseCase {
	return &ListChatsUseCase{Repo: repo}
}

func (uc *ListChatsUseCase) Execute(ctx context.Context, in ListChatsInput) ([]chat.Chat, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	chats, err := uc.Repo.ListChatsByUser(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return chats, nil
}
