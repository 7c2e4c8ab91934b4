package domain

import (
	"errors"
	"fmt"

	"go-jobboard-api/pkg/apperror"
)

// Repository sentinels. Adapters wrap these so callers can use errors.Is.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrStaleState means the row no longer holds the state the write was
	// computed from.
	ErrStaleState = errors.New("resource state changed")
)

// corruptRecord marks a stored row that breaks an entity invariant. It is an
// internal failure, never a client validation error.
func corruptRecord(entity, id string, err error) error {
	return apperror.Internal(fmt.Errorf("restore %s %q: %w", entity, id, err))
}
