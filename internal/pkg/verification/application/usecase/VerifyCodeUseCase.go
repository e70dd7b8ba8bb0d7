package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	cacheport "github.com/zhahittya/encrypto-backend/internal/infrastructure/cache/port"
	verification "github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/domain"
)

type VerifyCodeInput struct {
	Email   string
	Code    string
	Purpose verification.Purpose
}

// VerifyCodeUseCase checks a submitted code against the cached one and
// consumes it on success. An expired key surfaces as a cache miss, so expired
// and wrong codes are indistinguishable to the caller.
type VerifyCodeUseCase struct {
	Cache cacheport.Cache
}

func NewVerifyCodeUseCase(cache cacheport.Cache) *VerifyCodeUseCase {
	return &VerifyCodeUseCase{Cache: cache}
}

func (uc *VerifyCodeUseCase) Execute(ctx context.Context, in VerifyCodeInput) error {
	if uc == nil || uc.Cache == nil {
		return errors.New("VerifyCodeUseCase not initialized")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	code := strings.TrimSpace(in.Code)
	if email == "" || code == "" {
		return verification.ErrWrongCode
	}
	if !in.Purpose.Valid() {
		return fmt.Errorf("unknown verification purpose %q", in.Purpose)
	}

	key := verification.CacheKey(in.Purpose, email)
	want, err := uc.Cache.Get(ctx, key)
	if errors.Is(err, cacheport.ErrMiss) {
		return verification.ErrWrongCode
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInfrastructure, err)
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(code)) != 1 {
		return verification.ErrWrongCode
	}

	// Consume the code. Deletion failure is not fatal; the TTL will clean up.
	if _, err := uc.Cache.Del(ctx, key); err != nil {
		return nil
	}
	return nil
}
