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

type LoginInput struct {
	// Login is an email address or a username.
	Login    string
	Password string
}

type LoginUseCase struct {
	Repo repository.UserRepository
}

func NewLoginUseCase(repo repository.UserRepository) *LoginUseCase {
	return &LoginUseCase{Repo: repo}
}

// Execute authenticates a user. A missing account and a wrong password both
// come back as ErrInvalidCredentials so the response does not leak which
// logins exist.
func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*user.User, error) {
	if uc == nil || uc.Repo == nil {
		return nil, errors.New("LoginUseCase not initialized")
	}
	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		return nil, user.ErrInvalidCredentials
	}

	u, err := uc.Repo.GetByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, user.ErrInvalidCredentials
	}
	return u, nil
}
