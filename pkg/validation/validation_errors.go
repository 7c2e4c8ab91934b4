package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps request struct field names to user facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":    "Email",
	"Password": "Password",
	"Name":     "Name",
	"Role":     "Role",

	// Profile fields
	"Resume":      "Resume",
	"CompanyName": "Company name",
	"Description": "Description",

	// Job and application fields
	"Title": "Job title",
	"JobID": "Job ID",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot exceed %s characters", label, param)
		}
		return fmt.Sprintf("%s cannot exceed %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "email":
		return fmt.Sprintf("%s has an invalid format", label)

	case "user_role":
		return fmt.Sprintf("%s must be CANDIDATE or COMPANY", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, digits, spaces and common punctuation", label)

	case "no_emoji":
		return fmt.Sprintf("%s cannot contain emoji or special symbols", label)

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
