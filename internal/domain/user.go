package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go-jobboard-api/pkg/apperror"
)

const (
	UserNameMinLength = 2
	UserNameMaxLength = 100
)

// User is an account. Fields are only reachable through accessors; every
// change goes through a method that returns a new validated value.
type User struct {
	id        string
	email     Email
	password  PasswordHash
	name      string
	role      UserRole
	createdAt time.Time
	updatedAt time.Time
}

// UserRecord is the flat shape persistence adapters read and write.
type UserRecord struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(id string, email Email, password PasswordHash, name string, role UserRole, now time.Time) (User, error) {
	if err := requireNonBlank(id, "User ID"); err != nil {
		return User{}, err
	}
	if email.IsZero() {
		return User{}, apperror.Validation("Email cannot be empty")
	}
	if password.Hash() == "" {
		return User{}, apperror.Validation("Password hash cannot be empty")
	}
	if !role.IsValid() {
		return User{}, apperror.Validation("Role must be CANDIDATE or COMPANY")
	}
	trimmed, err := validateUserName(name)
	if err != nil {
		return User{}, err
	}

	return User{
		id:        id,
		email:     email,
		password:  password,
		name:      trimmed,
		role:      role,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// RestoreUser rebuilds a User from storage, re-checking its invariants.
func RestoreUser(rec UserRecord) (User, error) {
	v, err := restoreUser(rec)
	if err != nil {
		return User{}, corruptRecord("user", rec.ID, err)
	}
	return v, nil
}

func restoreUser(rec UserRecord) (User, error) {
	email, err := NewEmail(rec.Email)
	if err != nil {
		return User{}, err
	}
	password, err := PasswordHashFromStored(rec.PasswordHash)
	if err != nil {
		return User{}, err
	}
	u, err := NewUser(rec.ID, email, password, rec.Name, rec.Role, rec.CreatedAt)
	if err != nil {
		return User{}, err
	}
	u.updatedAt = rec.UpdatedAt
	return u, nil
}

func (u User) Record() UserRecord {
	return UserRecord{
		ID:           u.id,
		Email:        u.email.String(),
		PasswordHash: u.password.Hash(),
		Name:         u.name,
		Role:         u.role,
		CreatedAt:    u.createdAt,
		UpdatedAt:    u.updatedAt,
	}
}

func (u User) ID() string                 { return u.id }
func (u User) Email() Email               { return u.email }
func (u User) PasswordHash() PasswordHash { return u.password }
func (u User) Name() string               { return u.name }
func (u User) Role() UserRole             { return u.role }
func (u User) CreatedAt() time.Time       { return u.createdAt }
func (u User) UpdatedAt() time.Time       { return u.updatedAt }
func (u User) IsCandidate() bool          { return u.role == RoleCandidate }
func (u User) IsCompany() bool            { return u.role == RoleCompany }

// Rename returns a copy with a new display name. Role is never changeable.
func (u User) Rename(name string, now time.Time) (User, error) {
	trimmed, err := validateUserName(name)
	if err != nil {
		return User{}, err
	}
	u.name = trimmed
	u.updatedAt = now
	return u, nil
}

func validateUserName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperror.Validation("User name cannot be empty")
	}
	n := utf8.RuneCountInString(trimmed)
	if n < UserNameMinLength {
		return "", apperror.Validationf("User name must be at least %d characters", UserNameMinLength)
	}
	if n > UserNameMaxLength {
		return "", apperror.Validationf("User name cannot exceed %d characters", UserNameMaxLength)
	}
	return trimmed, nil
}

func requireNonBlank(value, label string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Validation(label + " cannot be empty")
	}
	return nil
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email Email) (User, error)
	ExistsByEmail(ctx context.Context, email Email) (bool, error)
	Save(ctx context.Context, user User) error
	Update(ctx context.Context, user User) error
	Delete(ctx context.Context, id string) error
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (User, error)
	// CreateUser is the admin-less account creation path. It follows the same
	// rules as Register.
	CreateUser(ctx context.Context, in RegisterInput) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	GetCurrentUser(ctx context.Context, id string) (User, error)
}
