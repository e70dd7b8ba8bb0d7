package repository

import (
	"context"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
)

// UserRepository defines persistence operations for accounts.
// Lookups return (nil, nil) when nothing matches; update methods report
// whether a row was touched. A non-nil error always means an infrastructure
// failure.
type UserRepository interface {
	CreateUser(ctx context.Context, u user.User) (string, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
	// GetByLogin matches either the email or the username.
	GetByLogin(ctx context.Context, login string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	UpdateProfile(ctx context.Context, id string, firstName, lastName, userName string) (bool, error)
	UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) (bool, error)
	// SearchUsers prefix-matches the username or the concatenated first+last name.
	SearchUsers(ctx context.Context, prefix string, limit int) ([]user.User, error)
	SetAvatar(ctx context.Context, id string, data []byte, contentType string) (bool, error)
	GetAvatar(ctx context.Context, id string) (*user.Avatar, error)
}
