package verification

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// Purpose distinguishes the two email verification flows.
type Purpose string

const (
	PurposeSignup Purpose = "signup"
	PurposeForgot Purpose = "forgot"
)

// CodeTTL is how long an issued code stays valid.
const CodeTTL = 10 * time.Minute

var (
	ErrWrongCode    = errors.New("verification: wrong or expired code")
	ErrUnknownEmail = errors.New("verification: no account with this email")
)

func (p Purpose) Valid() bool {
	return p == PurposeSignup || p == PurposeForgot
}

// CacheKey builds the Redis key holding the code for an email and purpose.
// One live code per (purpose, email); re-sending overwrites it.
func CacheKey(p Purpose, email string) string {
	return fmt.Sprintf("verify:%s:%s", p, email)
}

// GenerateCode returns a 6-digit zero-padded code from crypto/rand.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generating verification code: %v", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
