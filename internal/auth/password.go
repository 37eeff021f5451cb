package auth

import (
	"fmt"

	"github.com/collabmatch/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Hasher wraps bcrypt with a fixed cost. Each call salts independently,
// so hashing the same password twice yields different digests.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. The comparison is
// constant-time inside bcrypt. A mismatch surfaces as
// domain.ErrInvalidCredentials; a malformed digest is an internal error.
func (h *Hasher) Verify(password, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == nil {
		return nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return domain.ErrInvalidCredentials
	}
	return fmt.Errorf("verify password: %w", err)
}
