package domain

import (
	"fmt"
	"strings"

	"go-jobboard-api/pkg/apperror"
)

const (
	PasswordMinLength = 6
	// bcrypt ignores everything past 72 bytes.
	PasswordMaxLength = 72
)

// PasswordHasher is the one-way hashing capability the domain depends on.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) bool
}

// PasswordHash holds a stored hash. The plaintext is never kept.
type PasswordHash struct {
	hash string
}

// ValidatePlainPassword applies the plaintext rules without hashing.
func ValidatePlainPassword(plain string) error {
	if strings.TrimSpace(plain) == "" {
		return apperror.Validation("Password cannot be empty")
	}
	if len(plain) < PasswordMinLength {
		return apperror.Validationf("Password must be at least %d characters", PasswordMinLength)
	}
	if len(plain) > PasswordMaxLength {
		return apperror.Validationf("Password cannot exceed %d characters", PasswordMaxLength)
	}
	return nil
}

func NewPasswordHash(hasher PasswordHasher, plain string) (PasswordHash, error) {
	if err := ValidatePlainPassword(plain); err != nil {
		return PasswordHash{}, err
	}

	hashed, err := hasher.Hash(plain)
	if err != nil {
		return PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}
	return PasswordHash{hash: hashed}, nil
}

// PasswordHashFromStored rehydrates a persisted hash.
func PasswordHashFromStored(hash string) (PasswordHash, error) {
	if strings.TrimSpace(hash) == "" {
		return PasswordHash{}, apperror.Validation("Password hash cannot be empty")
	}
	return PasswordHash{hash: hash}, nil
}

func (p PasswordHash) Matches(hasher PasswordHasher, plain string) bool {
	if p.hash == "" {
		return false
	}
	return hasher.Compare(plain, p.hash)
}

// Hash returns the stored hash for persistence adapters.
func (p PasswordHash) Hash() string {
	return p.hash
}

func (p PasswordHash) String() string {
	return "[REDACTED]"
}

func (p PasswordHash) GoString() string {
	return "domain.PasswordHash{[REDACTED]}"
}

func (p PasswordHash) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}
