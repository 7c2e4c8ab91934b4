package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"

	"github.com/google/uuid"
)

// Option overrides the clock or id source of a use case. Tests use these to
// get deterministic values.
type Option func(*runtime)

type runtime struct {
	now   func() time.Time
	newID func() string
}

func WithClock(now func() time.Time) Option {
	return func(r *runtime) { r.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(r *runtime) { r.newID = newID }
}

func newRuntime(opts []Option) runtime {
	r := runtime{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

const (
	msgCandidateProfileMissing = "Candidate profile not found. Create a candidate profile first."
	msgCompanyProfileMissing   = "Company profile not found. Create a company profile first."
)

// notFoundOr turns a repository ErrNotFound into a typed NotFound failure and
// wraps anything else as an unexpected error.
func notFoundOr(err error, notFound *apperror.AppError, op string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// conflictOr maps a storage uniqueness violation onto Conflict.
func conflictOr(err error, message, op string) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return apperror.Conflict(message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func resolveCandidate(ctx context.Context, repo domain.CandidateRepository, actor domain.Actor) (domain.Candidate, error) {
	candidate, err := repo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return domain.Candidate{}, notFoundOr(err, apperror.NotFoundMsg(msgCandidateProfileMissing), "find candidate by user")
	}
	return candidate, nil
}

func resolveCompany(ctx context.Context, repo domain.CompanyRepository, actor domain.Actor) (domain.Company, error) {
	company, err := repo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return domain.Company{}, notFoundOr(err, apperror.NotFoundMsg(msgCompanyProfileMissing), "find company by user")
	}
	return company, nil
}
