package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

type SearchUsersInput struct {
	Prefix string
	Limit  int
}

type SearchUsersUseCase struct {
	Repo repository.UserRepository
}

func NewSearchUsersUseCase(repo repository.UserRepository) *SearchUsersUseCase {
	return &SearchUsersUseCase{Repo: repo}
}

func (uc *SearchUsersUseCase) Execute(ctx context.Context, in SearchUsersInput) ([]user.User, error) {
	if uc == nil || uc.Repo == nil {
		return nil, errors.New("SearchUsersUseCase not initialized")
	}
	prefix := strings.TrimSpace(in.Prefix)
	if prefix == "" {
		return nil, nil
	}
	users, err := uc.Repo.SearchUsers(ctx, prefix, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return users, nil
}
