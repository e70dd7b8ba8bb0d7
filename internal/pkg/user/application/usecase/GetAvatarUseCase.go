package usecase

import (
	"context"
	"errors"
	"fmt"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

type GetAvatarInput struct {
	UserID string
}

type GetAvatarUseCase struct {
	Repo repository.UserRepository
}

func NewGetAvatarUseCase(repo repository.UserRepository) *GetAvatarUseCase {
	return &GetAvatarUseCase{Repo: repo}
}

func (uc *GetAvatarUseCase) Execute(ctx context.Context, in GetAvatarInput) (*user.Avatar, error) {
	if uc == nil || uc.Repo == nil {
		return nil, errors.New("GetAvatarUseCase not initialized")
	}
	a, err := uc.Repo.GetAvatar(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if a == nil {
		return nil, user.ErrUserNotFound
	}
	return a, nil
}
