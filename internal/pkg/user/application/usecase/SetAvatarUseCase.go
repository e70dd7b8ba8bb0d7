package usecase

import (
	"context"
	"errors"
	"fmt"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

// maxAvatarBytes caps uploads at 2 MiB.
const maxAvatarBytes = 2 << 20

type SetAvatarInput struct {
	UserID      string
	Data        []byte
	ContentType string
}

type SetAvatarUseCase struct {
	Repo repository.UserRepository
}

func NewSetAvatarUseCase(repo repository.UserRepository) *SetAvatarUseCase {
	return &SetAvatarUseCase{Repo: repo}
}

func (uc *SetAvatarUseCase) Execute(ctx context.Context, in SetAvatarInput) error {
	if uc == nil || uc.Repo == nil {
		return errors.New("SetAvatarUseCase not initialized")
	}
	if len(in.Data) == 0 {
		return errors.New("avatar payload is empty")
	}
	if len(in.Data) > maxAvatarBytes {
		return errors.New("avatar exceeds the 2 MiB limit")
	}
	switch in.ContentType {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return fmt.Errorf("unsupported avatar content type %q", in.ContentType)
	}

	updated, err := uc.Repo.SetAvatar(ctx, in.UserID, in.Data, in.ContentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !updated {
		return user.ErrUserNotFound
	}
	return nil
}
