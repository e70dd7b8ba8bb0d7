package usecase

import (
	"context"
	"fmt"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/port"
)

// FindChatInput carries a participant pair, in any order.
type FindChatInput struct {
	User1ID string
	User2ID string
}

// FindChatUseCase looks up the 1:1 chat for a pair of users.
type FindChatUseCase struct {
	Repo repository.ChatRepository
}

func NewFindChatUseCase(repo repository.ChatRepository) *FindChatUseCase {
	return &FindChatUseCase{Repo: repo}
}

func (uc *FindChatUseCase) Execute(ctx context.Context, in FindChatInput) (*chat.Chat, error) {
	if in.User1ID == "" || in.User2ID == "" {
		return nil, fmt.Errorf("both user ids are required")
	}
	a, b := chat.SortParticipants(in.User1ID, in.User2ID)
	c, err := uc.Repo.FindChatByParticipants(ctx, a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if c == nil {
		return nil, chat.ErrChatNotFound
	}
	return c, nil
}
