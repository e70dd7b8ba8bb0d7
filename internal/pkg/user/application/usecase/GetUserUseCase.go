package usecase

import (
	"context"
	"errors"
	"fmt"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

type GetUserInput struct {
	UserID string
}

type GetUserUseCase struct {
	Repo repository.UserRepository
}

func NewGetUserUseCase(repo repository.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{Repo: repo}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, in GetUserInput) (*user.User, error) {
	if uc == nil || uc.Repo == nil {
		return nil, errors.New("GetUserUseCase not initialized")
	}
	u, err := uc.Repo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}
