package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordTooLong error = errors.New("password exceeds 72 bytes")

// BcryptHasher produces salted bcrypt digests of user passwords.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{
		cost: cost,
	}
}

// Hash returns a new digest on every call; the salt is generated by bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("generate bcrypt digest: %w", err)
	}

	return string(digest), nil
}

// MaxLength is the longest password bcrypt digests without truncation.
const MaxLength = 72

// Verify reports whether password matches hash. The comparison is constant-time. Passwords
// longer than MaxLength never match, since bcrypt would only compare their prefix.
func (h *BcryptHasher) Verify(password, hash string) bool {
	if len(password) > MaxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
