package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cacheport "github.com/zhahittya/encrypto-backend/internal/infrastructure/cache/port"
	queueport "github.com/zhahittya/encrypto-backend/internal/infrastructure/queue/port"
	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	verification "github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/task"
)

// stubCache is an in-memory cache; expirations are not simulated, a test
// deletes the key to model expiry.
type stubCache struct {
	values map[string]string
	err    error
}

func newStubCache() *stubCache { return &stubCache{values: map[string]string{}} }

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	v, ok := s.values[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (s *stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	return nil
}

func (s *stubCache) Del(ctx context.Context, keys ...string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, k := range keys {
		if _, ok := s.values[k]; ok {
			delete(s.values, k)
			n++
		}
	}
	return n, nil
}

func (s *stubCache) Ping(ctx context.Context) error { return nil }
func (s *stubCache) Close() error                   { return nil }

// stubQueue records enqueued tasks.
type stubQueue struct {
	tasks []queueport.Task
	opts  []queueport.EnqueueOption
	err   error
}

func (s *stubQueue) Enqueue(ctx context.Context, t queueport.Task, opts ...queueport.EnqueueOption) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.tasks = append(s.tasks, t)
	s.opts = append(s.opts, opts...)
	return "task-1", nil
}

func (s *stubQueue) Close() error { return nil }

// stubUserExists answers ExistsByEmail only; everything else is unused here.
type stubUserExists struct {
	emails map[string]bool
}

func (s *stubUserExists) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.emails[email], nil
}
func (s *stubUserExists) CreateUser(ctx context.Context, u user.User) (string, error) {
	return "", nil
}
func (s *stubUserExists) GetByID(ctx context.Context, id string) (*user.User, error) {
	return nil, nil
}
func (s *stubUserExists) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	return nil, nil
}
func (s *stubUserExists) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	return false, nil
}
func (s *stubUserExists) UpdateProfile(ctx context.Context, id string, firstName, lastName, userName string) (bool, error) {
	return false, nil
}
func (s *stubUserExists) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) (bool, error) {
	return false, nil
}
func (s *stubUserExists) SearchUsers(ctx context.Context, prefix string, limit int) ([]user.User, error) {
	return nil, nil
}
func (s *stubUserExists) SetAvatar(ctx context.Context, id string, data []byte, contentType string) (bool, error) {
	return false, nil
}
func (s *stubUserExists) GetAvatar(ctx context.Context, id string) (*user.Avatar, error) {
	return nil, nil
}

func TestSendCodeCachesAndEnqueues(t *testing.T) {
	cache := newStubCache()
	queue := &stubQueue{}
	uc := NewSendCodeUseCase(cache, queue, &stubUserExists{})

	require.NoError(t, uc.Execute(context.Background(), SendCodeInput{
		Email:   "Alice@Example.com",
		Purpose: verification.PurposeSignup,
	}))

	code, ok := cache.values["verify:signup:alice@example.com"]
	require.True(t, ok, "code must be cached under the normalized email")
	assert.Len(t, code, 6)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, task.TypeVerificationEmail, queue.tasks[0].Type)
	var p task.VerificationEmailPayload
	require.NoError(t, json.Unmarshal(queue.tasks[0].Payload, &p))
	assert.Equal(t, "alice@example.com", p.Email)
	assert.Equal(t, code, p.Code)

	require.Len(t, queue.opts, 1)
	assert.Equal(t, task.QueueMail, queue.opts[0].Queue)
}

func TestSendCodeForgotRequiresAccount(t *testing.T) {
	uc := NewSendCodeUseCase(newStubCache(), &stubQueue{}, &stubUserExists{})

	err := uc.Execute(context.Background(), SendCodeInput{
		Email:   "ghost@example.com",
		Purpose: verification.PurposeForgot,
	})
	assert.ErrorIs(t, err, verification.ErrUnknownEmail)
}

func TestSendCodeForgotKnownAccount(t *testing.T) {
	users := &stubUserExists{emails: map[string]bool{"alice@example.com": true}}
	cache := newStubCache()
	uc := NewSendCodeUseCase(cache, &stubQueue{}, users)

	require.NoError(t, uc.Execute(context.Background(), SendCodeInput{
		Email:   "alice@example.com",
		Purpose: verification.PurposeForgot,
	}))
	assert.Contains(t, cache.values, "verify:forgot:alice@example.com")
}

func TestSendCodeResendOverwrites(t *testing.T) {
	cache := newStubCache()
	queue := &stubQueue{}
	uc := NewSendCodeUseCase(cache, queue, &stubUserExists{})

	in := SendCodeInput{Email: "alice@example.com", Purpose: verification.PurposeSignup}
	require.NoError(t, uc.Execute(context.Background(), in))
	require.NoError(t, uc.Execute(context.Background(), in))

	// One key, holding whichever code was issued last. The second email
	// carries exactly the stored code.
	require.Len(t, cache.values, 1)
	require.Len(t, queue.tasks, 2)
	var p task.VerificationEmailPayload
	require.NoError(t, json.Unmarshal(queue.tasks[1].Payload, &p))
	assert.Equal(t, cache.values["verify:signup:alice@example.com"], p.Code)
}

func TestVerifyCodeConsumesOnSuccess(t *testing.T) {
	cache := newStubCache()
	cache.values["verify:signup:alice@example.com"] = "123456"
	uc := NewVerifyCodeUseCase(cache)

	require.NoError(t, uc.Execute(context.Background(), VerifyCodeInput{
		Email:   "alice@example.com",
		Code:    "123456",
		Purpose: verification.PurposeSignup,
	}))
	assert.NotContains(t, cache.values, "verify:signup:alice@example.com", "code must be single-use")

	// Second attempt with the same code fails.
	err := uc.Execute(context.Background(), VerifyCodeInput{
		Email:   "alice@example.com",
		Code:    "123456",
		Purpose: verification.PurposeSignup,
	})
	assert.ErrorIs(t, err, verification.ErrWrongCode)
}

func TestVerifyCodeWrongCode(t *testing.T) {
	cache := newStubCache()
	cache.values["verify:signup:alice@example.com"] = "123456"
	uc := NewVerifyCodeUseCase(cache)

	err := uc.Execute(context.Background(), VerifyCodeInput{
		Email:   "alice@example.com",
		Code:    "654321",
		Purpose: verification.PurposeSignup,
	})
	assert.ErrorIs(t, err, verification.ErrWrongCode)
	assert.Contains(t, cache.values, "verify:signup:alice@example.com", "failed attempts keep the code")
}

func TestVerifyCodeExpired(t *testing.T) {
	uc := NewVerifyCodeUseCase(newStubCache())
	err := uc.Execute(context.Background(), VerifyCodeInput{
		Email:   "alice@example.com",
		Code:    "123456",
		Purpose: verification.PurposeSignup,
	})
	assert.ErrorIs(t, err, verification.ErrWrongCode)
}

func TestVerifyCodePurposesAreIsolated(t *testing.T) {
	cache := newStubCache()
	cache.values["verify:signup:alice@example.com"] = "123456"
	uc := NewVerifyCodeUseCase(cache)

	err := uc.Execute(context.Background(), VerifyCodeInput{
		Email:   "alice@example.com",
		Code:    "123456",
		Purpose: verification.PurposeForgot,
	})
	assert.ErrorIs(t, err, verification.ErrWrongCode)
}
