// Package password wraps bcrypt so the rest of the service never touches the
// hashing primitive directly. Each hash embeds a random salt, so hashing the
// same password twice yields different hashes, and comparison is done by
// bcrypt itself rather than a byte-wise compare.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=../../mocks/mock_hasher.go -package=mocks github.com/fintrack/expense-tracker/internal/auth/password Hasher

type Hasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. Malformed hashes verify
	// as false rather than erroring.
	Verify(plaintext, hash string) bool
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost. Costs outside the
// bcrypt range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}

func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
