package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
)

func TestSignupHashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := newStubUserRepository()
	uc := NewSignupUseCase(repo)

	u, err := uc.Execute(context.Background(), SignupInput{
		Email:    "  Bob@Example.COM ",
		UserName: "bob",
		Password: "battery staple",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.Email)
	assert.NotEqual(t, "battery staple", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("battery staple")))
	assert.NotEmpty(t, u.ID)
}

func TestSignupRejectsTakenEmail(t *testing.T) {
	repo := newStubUserRepository()
	seedAccount(t, repo, "bob@example.com", "bob", "battery staple")

	uc := NewSignupUseCase(repo)
	_, err := uc.Execute(context.Background(), SignupInput{
		Email:    "bob@example.com",
		UserName: "robert",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestSignupRejectsTakenUserName(t *testing.T) {
	repo := newStubUserRepository()
	seedAccount(t, repo, "bob@example.com", "bob", "battery staple")

	uc := NewSignupUseCase(repo)
	_, err := uc.Execute(context.Background(), SignupInput{
		Email:    "robert@example.com",
		UserName: "bob",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, user.ErrUserNameTaken)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	uc := NewSignupUseCase(newStubUserRepository())
	_, err := uc.Execute(context.Background(), SignupInput{
		Email:    "bob@example.com",
		UserName: "bob",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestChangePasswordRewritesHash(t *testing.T) {
	repo := newStubUserRepository()
	seedAccount(t, repo, "bob@example.com", "bob", "battery staple")

	uc := NewChangePasswordUseCase(repo)
	require.NoError(t, uc.Execute(context.Background(), ChangePasswordInput{
		Email:       "bob@example.com",
		NewPassword: "correct horse",
	}))

	login := NewLoginUseCase(repo)
	_, err := login.Execute(context.Background(), LoginInput{Login: "bob", Password: "correct horse"})
	assert.NoError(t, err)
	_, err = login.Execute(context.Background(), LoginInput{Login: "bob", Password: "battery staple"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestChangePasswordUnknownEmail(t *testing.T) {
	uc := NewChangePasswordUseCase(newStubUserRepository())
	err := uc.Execute(context.Background(), ChangePasswordInput{
		Email:       "nobody@example.com",
		NewPassword: "correct horse",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
