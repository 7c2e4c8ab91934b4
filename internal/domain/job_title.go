package domain

import (
	"strings"
	"unicode/utf8"

	"go-jobboard-api/pkg/apperror"
)

const (
	JobTitleMinLength = 3
	JobTitleMaxLength = 100
)

type JobTitle struct {
	value string
}

func NewJobTitle(raw string) (JobTitle, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return JobTitle{}, apperror.Validation("Job title cannot be empty")
	}

	n := utf8.RuneCountInString(trimmed)
	if n < JobTitleMinLength {
		return JobTitle{}, apperror.Validationf("Job title must be at least %d characters", JobTitleMinLength)
	}
	if n > JobTitleMaxLength {
		return JobTitle{}, apperror.Validationf("Job title cannot exceed %d characters", JobTitleMaxLength)
	}
	return JobTitle{value: trimmed}, nil
}

func (t JobTitle) String() string {
	return t.value
}

func (t JobTitle) Equals(other JobTitle) bool {
	return t.value == other.value
}
