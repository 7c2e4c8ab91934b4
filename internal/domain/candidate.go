package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go-jobboard-api/pkg/apperror"
)

const ResumeMaxLength = 5000

type Candidate struct {
	id        string
	userID    string
	resume    string
	createdAt time.Time
	updatedAt time.Time
}

type CandidateRecord struct {
	ID        string
	UserID    string
	Resume    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateCandidateRole gates candidate profile creation on the owner's role.
func ValidateCandidateRole(user User) error {
	if !user.IsCandidate() {
		return apperror.Validation("Only users with CANDIDATE role can create a candidate profile")
	}
	return nil
}

func NewCandidate(id, userID, resume string, now time.Time) (Candidate, error) {
	if err := requireNonBlank(id, "Candidate ID"); err != nil {
		return Candidate{}, err
	}
	if err := requireNonBlank(userID, "User ID"); err != nil {
		return Candidate{}, err
	}
	r, err := validateResume(resume)
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{id: id, userID: userID, resume: r, createdAt: now, updatedAt: now}, nil
}

func RestoreCandidate(rec CandidateRecord) (Candidate, error) {
	v, err := restoreCandidate(rec)
	if err != nil {
		return Candidate{}, corruptRecord("candidate", rec.ID, err)
	}
	return v, nil
}

func restoreCandidate(rec CandidateRecord) (Candidate, error) {
	c, err := NewCandidate(rec.ID, rec.UserID, rec.Resume, rec.CreatedAt)
	if err != nil {
		return Candidate{}, err
	}
	c.updatedAt = rec.UpdatedAt
	return c, nil
}

func (c Candidate) Record() CandidateRecord {
	return CandidateRecord{
		ID:        c.id,
		UserID:    c.userID,
		Resume:    c.resume,
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
	}
}

func (c Candidate) ID() string           { return c.id }
func (c Candidate) UserID() string       { return c.userID }
func (c Candidate) Resume() string       { return c.resume }
func (c Candidate) HasResume() bool      { return c.resume != "" }
func (c Candidate) CreatedAt() time.Time { return c.createdAt }
func (c Candidate) UpdatedAt() time.Time { return c.updatedAt }

func (c Candidate) BelongsToUser(userID string) bool {
	return c.userID == userID
}

func (c Candidate) UpdateResume(resume string, now time.Time) (Candidate, error) {
	r, err := validateResume(resume)
	if err != nil {
		return Candidate{}, err
	}
	c.resume = r
	c.updatedAt = now
	return c, nil
}

func validateResume(resume string) (string, error) {
	trimmed := strings.TrimSpace(resume)
	if utf8.RuneCountInString(trimmed) > ResumeMaxLength {
		return "", apperror.Validationf("Resume cannot exceed %d characters", ResumeMaxLength)
	}
	return trimmed, nil
}

type CandidateRepository interface {
	FindByID(ctx context.Context, id string) (Candidate, error)
	FindByUserID(ctx context.Context, userID string) (Candidate, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	Save(ctx context.Context, candidate Candidate) error
	Update(ctx context.Context, candidate Candidate) error
	Delete(ctx context.Context, id string) error
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, actor Actor, resume string) (Candidate, error)
	GetMyProfile(ctx context.Context, actor Actor) (Candidate, error)
	UpdateResume(ctx context.Context, actor Actor, resume string) (Candidate, error)
}
