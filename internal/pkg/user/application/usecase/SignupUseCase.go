package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

type SignupInput struct {
	Email     string
	UserName  string
	FirstName string
	LastName  string
	Password  string
}

// SignupUseCase creates an account. The email must already be verified by the
// verification flow before this runs; signup itself only enforces uniqueness.
type SignupUseCase struct {
	Repo repository.UserRepository
}

func NewSignupUseCase(repo repository.UserRepository) *SignupUseCase {
	return &SignupUseCase{Repo: repo}
}

func (uc *SignupUseCase) Execute(ctx context.Context, in SignupInput) (*user.User, error) {
	if uc == nil || uc.Repo == nil {
		return nil, errors.New("SignupUseCase not initialized")
	}
	if len(in.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %v", err)
	}

	u, err := user.NewUser(user.User{
		Email:        in.Email,
		UserName:     in.UserName,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	taken, err := uc.Repo.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if taken {
		return nil, user.ErrEmailTaken
	}

	taken, err = uc.Repo.ExistsByUserName(ctx, u.UserName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if taken {
		return nil, user.ErrUserNameTaken
	}

	id, err := uc.Repo.CreateUser(ctx, *u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	u.ID = id
	return u, nil
}
