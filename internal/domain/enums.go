package domain

import (
	"strings"

	"go-jobboard-api/pkg/apperror"
)

type UserRole string

const (
	RoleCandidate UserRole = "CANDIDATE"
	RoleCompany   UserRole = "COMPANY"
)

func (r UserRole) IsValid() bool {
	return r == RoleCandidate || r == RoleCompany
}

// ParseUserRole accepts either case ("company" or "COMPANY").
func ParseUserRole(raw string) (UserRole, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", apperror.Validation("Role is required")
	}
	role := UserRole(strings.ToUpper(trimmed))
	if !role.IsValid() {
		return "", apperror.Validation("Role must be CANDIDATE or COMPANY")
	}
	return role, nil
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

func (s JobStatus) IsValid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending: {ApplicationAccepted, ApplicationRejected},
}

// CanTransitionStatus is the legal transition table for applications.
func CanTransitionStatus(from, to ApplicationStatus) bool {
	for _, next := range applicationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
