package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the API distinguishes.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

type AppError struct {
	Kind     Kind   `json:"kind"`
	Message  string `json:"message"`
	Resource string `json:"resource,omitempty"`
	ID       string `json:"id,omitempty"`
	// Authentication marks an Unauthorized failure caused by bad credentials
	// rather than by missing permissions.
	Authentication bool  `json:"-"`
	Err            error `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return New(KindValidation, message, nil)
}

func Validationf(format string, args ...any) *AppError {
	return New(KindValidation, fmt.Sprintf(format, args...), nil)
}

func Unauthorized(message string) *AppError {
	return New(KindUnauthorized, message, nil)
}

// InvalidCredentials is returned by authentication for both unknown emails and
// wrong passwords so callers cannot tell which one failed.
func InvalidCredentials() *AppError {
	e := New(KindUnauthorized, "Invalid credentials", nil)
	e.Authentication = true
	return e
}

// NotFound builds "<resource> with identifier '<id>' not found", or
// "<resource> not found" when id is empty.
func NotFound(resource, id string) *AppError {
	msg := resource + " not found"
	if id != "" {
		msg = fmt.Sprintf("%s with identifier '%s' not found", resource, id)
	}
	e := New(KindNotFound, msg, nil)
	e.Resource = resource
	e.ID = id
	return e
}

// NotFoundMsg is a NotFound failure with a caller supplied message.
func NotFoundMsg(message string) *AppError {
	return New(KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message, nil)
}

func Internal(err error) *AppError {
	return New(KindInternal, "Internal Server Error", err)
}

// KindOf classifies any error. Errors that are not an *AppError are internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps an error onto the status code the API answers with.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		if appErr.Authentication {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
