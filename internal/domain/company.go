package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go-jobboard-api/pkg/apperror"
)

const (
	CompanyNameMinLength        = 2
	CompanyNameMaxLength        = 100
	CompanyDescriptionMaxLength = 1000
)

type Company struct {
	id          string
	userID      string
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

type CompanyRecord struct {
	ID          string
	UserID      string
	CompanyName string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateCompanyRole gates company profile creation on the owner's role.
func ValidateCompanyRole(user User) error {
	if !user.IsCompany() {
		return apperror.Validation("Only users with COMPANY role can create a company profile")
	}
	return nil
}

func NewCompany(id, userID, name, description string, now time.Time) (Company, error) {
	if err := requireNonBlank(id, "Company ID"); err != nil {
		return Company{}, err
	}
	if err := requireNonBlank(userID, "User ID"); err != nil {
		return Company{}, err
	}
	n, err := validateCompanyName(name)
	if err != nil {
		return Company{}, err
	}
	d, err := validateCompanyDescription(description)
	if err != nil {
		return Company{}, err
	}
	return Company{id: id, userID: userID, name: n, description: d, createdAt: now, updatedAt: now}, nil
}

func RestoreCompany(rec CompanyRecord) (Company, error) {
	v, err := restoreCompany(rec)
	if err != nil {
		return Company{}, corruptRecord("company", rec.ID, err)
	}
	return v, nil
}

func restoreCompany(rec CompanyRecord) (Company, error) {
	c, err := NewCompany(rec.ID, rec.UserID, rec.CompanyName, rec.Description, rec.CreatedAt)
	if err != nil {
		return Company{}, err
	}
	c.updatedAt = rec.UpdatedAt
	return c, nil
}

func (c Company) Record() CompanyRecord {
	return CompanyRecord{
		ID:          c.id,
		UserID:      c.userID,
		CompanyName: c.name,
		Description: c.description,
		CreatedAt:   c.createdAt,
		UpdatedAt:   c.updatedAt,
	}
}

func (c Company) ID() string           { return c.id }
func (c Company) UserID() string       { return c.userID }
func (c Company) CompanyName() string  { return c.name }
func (c Company) Description() string  { return c.description }
func (c Company) CreatedAt() time.Time { return c.createdAt }
func (c Company) UpdatedAt() time.Time { return c.updatedAt }

func (c Company) BelongsToUser(userID string) bool {
	return c.userID == userID
}

// UpdateProfile replaces name and description together; both are validated
// before anything changes.
func (c Company) UpdateProfile(name, description string, now time.Time) (Company, error) {
	n, err := validateCompanyName(name)
	if err != nil {
		return Company{}, err
	}
	d, err := validateCompanyDescription(description)
	if err != nil {
		return Company{}, err
	}
	c.name = n
	c.description = d
	c.updatedAt = now
	return c, nil
}

func validateCompanyName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperror.Validation("Company name cannot be empty")
	}
	n := utf8.RuneCountInString(trimmed)
	if n < CompanyNameMinLength {
		return "", apperror.Validationf("Company name must be at least %d characters", CompanyNameMinLength)
	}
	if n > CompanyNameMaxLength {
		return "", apperror.Validationf("Company name cannot exceed %d characters", CompanyNameMaxLength)
	}
	return trimmed, nil
}

func validateCompanyDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if utf8.RuneCountInString(trimmed) > CompanyDescriptionMaxLength {
		return "", apperror.Validationf("Description cannot exceed %d characters", CompanyDescriptionMaxLength)
	}
	return trimmed, nil
}

type CompanyRepository interface {
	FindByID(ctx context.Context, id string) (Company, error)
	FindByUserID(ctx context.Context, userID string) (Company, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	Save(ctx context.Context, company Company) error
	Update(ctx context.Context, company Company) error
	Delete(ctx context.Context, id string) error
}

type CompanyInput struct {
	CompanyName string
	Description string
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, actor Actor, in CompanyInput) (Company, error)
	GetMyCompany(ctx context.Context, actor Actor) (Company, error)
	UpdateCompany(ctx context.Context, actor Actor, in CompanyInput) (Company, error)
}
