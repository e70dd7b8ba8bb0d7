package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cacheport "github.com/zhahittya/encrypto-backend/internal/infrastructure/cache/port"
	queueport "github.com/zhahittya/encrypto-backend/internal/infrastructure/queue/port"
	verification "github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/task"
	userrepo "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

type SendCodeInput struct {
	Email   string
	Purpose verification.Purpose
}

// SendCodeUseCase issues a one-time code, caches it with a TTL, and enqueues
// the verification email. Re-sending replaces the previous code.
type SendCodeUseCase struct {
	Cache cacheport.Cache
	Queue queueport.Client
	Users userrepo.UserRepository
}

func NewSendCodeUseCase(cache cacheport.Cache, queue queueport.Client, users userrepo.UserRepository) *SendCodeUseCase {
	return &SendCodeUseCase{Cache: cache, Queue: queue, Users: users}
}

func (uc *SendCodeUseCase) Execute(ctx context.Context, in SendCodeInput) error {
	if uc == nil || uc.Cache == nil || uc.Queue == nil {
		return errors.New("SendCodeUseCase not initialized")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return errors.New("a valid email is required")
	}
	if !in.Purpose.Valid() {
		return fmt.Errorf("unknown verification purpose %q", in.Purpose)
	}

	// Password reset codes only go to addresses that have an account.
	if in.Purpose == verification.PurposeForgot {
		if uc.Users == nil {
			return errors.New("SendCodeUseCase not initialized")
		}
		exists, err := uc.Users.ExistsByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInfrastructure, err)
		}
		if !exists {
			return verification.ErrUnknownEmail
		}
	}

	code, err := verification.GenerateCode()
	if err != nil {
		return err
	}
	if err := uc.Cache.Set(ctx, verification.CacheKey(in.Purpose, email), code, verification.CodeTTL); err != nil {
		return fmt.Errorf("%w: %v", ErrInfrastructure, err)
	}

	t, err := task.NewVerificationEmailTask(email, code, in.Purpose)
	if err != nil {
		return err
	}
	if _, err := uc.Queue.Enqueue(ctx, t, queueport.EnqueueOption{Queue: task.QueueMail, MaxRetry: 3}); err != nil {
		return fmt.Errorf("%w: %v", ErrInfrastructure, err)
	}
	return nil
}
