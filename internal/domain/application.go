package domain

import (
	"context"
	"time"

	"go-jobboard-api/pkg/apperror"
)

// Application records that a candidate applied to a job. Its status only moves
// through Accept and Reject.
type Application struct {
	id          string
	candidateID string
	jobID       string
	status      ApplicationStatus
	createdAt   time.Time
	updatedAt   time.Time
}

type ApplicationRecord struct {
	ID          string
	CandidateID string
	JobID       string
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewApplication creates a PENDING application.
func NewApplication(id, candidateID, jobID string, now time.Time) (Application, error) {
	if err := requireNonBlank(id, "Application ID"); err != nil {
		return Application{}, err
	}
	if err := requireNonBlank(candidateID, "Candidate ID"); err != nil {
		return Application{}, err
	}
	if err := requireNonBlank(jobID, "Job ID"); err != nil {
		return Application{}, err
	}
	return Application{
		id:          id,
		candidateID: candidateID,
		jobID:       jobID,
		status:      ApplicationPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func RestoreApplication(rec ApplicationRecord) (Application, error) {
	v, err := restoreApplication(rec)
	if err != nil {
		return Application{}, corruptRecord("application", rec.ID, err)
	}
	return v, nil
}

func restoreApplication(rec ApplicationRecord) (Application, error) {
	a, err := NewApplication(rec.ID, rec.CandidateID, rec.JobID, rec.CreatedAt)
	if err != nil {
		return Application{}, err
	}
	if !rec.Status.IsValid() {
		return Application{}, apperror.Validationf("Invalid application status %q", rec.Status)
	}
	a.status = rec.Status
	a.updatedAt = rec.UpdatedAt
	return a, nil
}

func (a Application) Record() ApplicationRecord {
	return ApplicationRecord{
		ID:          a.id,
		CandidateID: a.candidateID,
		JobID:       a.jobID,
		Status:      a.status,
		CreatedAt:   a.createdAt,
		UpdatedAt:   a.updatedAt,
	}
}

func (a Application) ID() string                { return a.id }
func (a Application) CandidateID() string       { return a.candidateID }
func (a Application) JobID() string             { return a.jobID }
func (a Application) Status() ApplicationStatus { return a.status }
func (a Application) CreatedAt() time.Time      { return a.createdAt }
func (a Application) UpdatedAt() time.Time      { return a.updatedAt }
func (a Application) IsPending() bool           { return a.status == ApplicationPending }
func (a Application) IsFinal() bool             { return a.status.IsTerminal() }

func (a Application) BelongsToCandidate(candidateID string) bool {
	return a.candidateID == candidateID
}

func (a Application) IsForJob(jobID string) bool {
	return a.jobID == jobID
}

func (a Application) Accept(now time.Time) (Application, error) {
	return a.transition(ApplicationAccepted, "accept", now)
}

func (a Application) Reject(now time.Time) (Application, error) {
	return a.transition(ApplicationRejected, "reject", now)
}

func (a Application) transition(to ApplicationStatus, verb string, now time.Time) (Application, error) {
	if !CanTransitionStatus(a.status, to) {
		return Application{}, apperror.Validationf("Cannot %s application with status %s", verb, a.status)
	}
	a.status = to
	a.updatedAt = now
	return a, nil
}

type ApplicationRepository interface {
	FindByID(ctx context.Context, id string) (Application, error)
	FindByCandidateID(ctx context.Context, candidateID string) ([]Application, error)
	FindByJobID(ctx context.Context, jobID string) ([]Application, error)
	// FindByCompanyID returns applications to any job owned by the company.
	FindByCompanyID(ctx context.Context, companyID string) ([]Application, error)
	FindByStatus(ctx context.Context, status ApplicationStatus) ([]Application, error)
	ExistsByCandidateAndJob(ctx context.Context, candidateID, jobID string) (bool, error)
	Save(ctx context.Context, application Application) error
	Update(ctx context.Context, application Application) error
	Delete(ctx context.Context, id string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor Actor, jobID string) (Application, error)
	Accept(ctx context.Context, actor Actor, applicationID string) (Application, error)
	Reject(ctx context.Context, actor Actor, applicationID string) (Application, error)
	ListJobApplications(ctx context.Context, actor Actor, jobID string) ([]Application, error)
	ListMyApplications(ctx context.Context, actor Actor) ([]Application, error)
	ListCompanyApplications(ctx context.Context, actor Actor) ([]Application, error)
}
