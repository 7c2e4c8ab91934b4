package domain

import (
	"regexp"
	"strings"

	"go-jobboard-api/pkg/apperror"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a trimmed, lowercased address in local@domain.tld shape.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, apperror.Validation("Email cannot be empty")
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, apperror.Validation("Invalid email format")
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}
