package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

type UpdateProfileInput struct {
	UserID    string
	FirstName string
	LastName  string
	UserName  string
}

type UpdateProfileUseCase struct {
	Repo repository.UserRepository
}

func NewUpdateProfileUseCase(repo repository.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{Repo: repo}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, in UpdateProfileInput) error {
	if uc == nil || uc.Repo == nil {
		return errors.New("UpdateProfileUseCase not initialized")
	}
	userName := strings.TrimSpace(in.UserName)
	if userName == "" {
		return errors.New("user_name is required")
	}

	// Reject the rename when the username belongs to somebody else.
	current, err := uc.Repo.GetByID(ctx, in.UserID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if current == nil {
		return user.ErrUserNotFound
	}
	if current.UserName != userName {
		taken, err := uc.Repo.ExistsByUserName(ctx, userName)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if taken {
			return user.ErrUserNameTaken
		}
	}

	updated, err := uc.Repo.UpdateProfile(ctx, in.UserID, strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName), userName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !updated {
		return user.ErrUserNotFound
	}
	return nil
}
