package user

import (
	"errors"
	"strings"
	"time"
)

// Domain-level errors for account behaviors
var (
	ErrUserNotFound       = errors.New("user: no such user")
	ErrEmailTaken         = errors.New("user: there is already an account with this email address")
	ErrUserNameTaken      = errors.New("user: this username is occupied")
	ErrInvalidCredentials = errors.New("user: invalid credentials")
)

// User is an account record. PasswordHash is a bcrypt hash and never leaves
// the application layer.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	UserName     string    `db:"user_name"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Avatar is the stored profile picture.
type Avatar struct {
	Data        []byte
	ContentType string
}

// NewUser normalizes and validates signup data. The password hash is produced
// by the use case; this only shapes the record.
func NewUser(u User) (*User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.UserName = strings.TrimSpace(u.UserName)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)

	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if u.UserName == "" {
		return nil, errors.New("user_name is required")
	}
	if u.PasswordHash == "" {
		return nil, errors.New("password hash is required")
	}
	return &u, nil
}
