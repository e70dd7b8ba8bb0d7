package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

type ChangePasswordInput struct {
	Email       string
	NewPassword string
}

// ChangePasswordUseCase rewrites the password for an email. The caller is
// responsible for having run the forgot-password verification first.
type ChangePasswordUseCase struct {
	Repo repository.UserRepository
}

func NewChangePasswordUseCase(repo repository.UserRepository) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{Repo: repo}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, in ChangePasswordInput) error {
	if uc == nil || uc.Repo == nil {
		return errors.New("ChangePasswordUseCase not initialized")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return errors.New("email is required")
	}
	if len(in.NewPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %v", err)
	}

	updated, err := uc.Repo.UpdatePasswordByEmail(ctx, email, string(hash))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !updated {
		return user.ErrUserNotFound
	}
	return nil
}
