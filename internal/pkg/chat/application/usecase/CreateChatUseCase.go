package usecase

import (
	"context"
	"fmt"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/port"
)

// CreateChatInput carries the participant pair to open a new 1:1 chat.
type CreateChatInput struct {
	User1ID string
	User2ID string
}

// CreateChatUseCase persists a chat for a sorted participant pair.
// Hexagonal: depends on the repository port only; the caller is responsible
// for pushing the new-chat notice to the other participant.
type CreateChatUseCase struct {
	Repo repository.ChatRepository
}

func NewCreateChatUseCase(repo repository.ChatRepository) *CreateChatUseCase {
	return &CreateChatUseCase{Repo: repo}
}

func (uc *CreateChatUseCase) Execute(ctx context.Context, in CreateChatInput) (*chat.Chat, error) {
	c, err := chat.NewChat(in.User1ID, in.User2ID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.Repo.FindChatByParticipants(ctx, c.UserA, c.UserB)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing != nil {
		return nil, chat.ErrChatExists
	}

	id, err := uc.Repo.CreateChat(ctx, *c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	c.ID = id
	return c, nil
}
