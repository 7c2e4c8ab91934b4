package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go-jobboard-api/pkg/apperror"
)

const (
	JobDescriptionMinLength = 10
	JobDescriptionMaxLength = 5000
)

type Job struct {
	id          string
	companyID   string
	title       JobTitle
	description string
	status      JobStatus
	createdAt   time.Time
	updatedAt   time.Time
}

type JobRecord struct {
	ID          string
	CompanyID   string
	Title       string
	Description string
	Status      JobStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewJob creates an OPEN job.
func NewJob(id, companyID string, title JobTitle, description string, now time.Time) (Job, error) {
	if err := requireNonBlank(id, "Job ID"); err != nil {
		return Job{}, err
	}
	if err := requireNonBlank(companyID, "Company ID"); err != nil {
		return Job{}, err
	}
	if title.String() == "" {
		return Job{}, apperror.Validation("Job title cannot be empty")
	}
	d, err := validateJobDescription(description)
	if err != nil {
		return Job{}, err
	}
	return Job{
		id:          id,
		companyID:   companyID,
		title:       title,
		description: d,
		status:      JobStatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func RestoreJob(rec JobRecord) (Job, error) {
	v, err := restoreJob(rec)
	if err != nil {
		return Job{}, corruptRecord("job", rec.ID, err)
	}
	return v, nil
}

func restoreJob(rec JobRecord) (Job, error) {
	title, err := NewJobTitle(rec.Title)
	if err != nil {
		return Job{}, err
	}
	j, err := NewJob(rec.ID, rec.CompanyID, title, rec.Description, rec.CreatedAt)
	if err != nil {
		return Job{}, err
	}
	if !rec.Status.IsValid() {
		return Job{}, apperror.Validationf("Invalid job status %q", rec.Status)
	}
	j.status = rec.Status
	j.updatedAt = rec.UpdatedAt
	return j, nil
}

func (j Job) Record() JobRecord {
	return JobRecord{
		ID:          j.id,
		CompanyID:   j.companyID,
		Title:       j.title.String(),
		Description: j.description,
		Status:      j.status,
		CreatedAt:   j.createdAt,
		UpdatedAt:   j.updatedAt,
	}
}

func (j Job) ID() string           { return j.id }
func (j Job) CompanyID() string    { return j.companyID }
func (j Job) Title() JobTitle      { return j.title }
func (j Job) Description() string  { return j.description }
func (j Job) Status() JobStatus    { return j.status }
func (j Job) CreatedAt() time.Time { return j.createdAt }
func (j Job) UpdatedAt() time.Time { return j.updatedAt }
func (j Job) IsOpen() bool         { return j.status == JobStatusOpen }
func (j Job) IsClosed() bool       { return j.status == JobStatusClosed }

func (j Job) BelongsToCompany(companyID string) bool {
	return j.companyID == companyID
}

func (j Job) Close(now time.Time) (Job, error) {
	if j.IsClosed() {
		return Job{}, apperror.Validation("Job is already closed")
	}
	j.status = JobStatusClosed
	j.updatedAt = now
	return j, nil
}

func (j Job) Reopen(now time.Time) (Job, error) {
	if j.IsOpen() {
		return Job{}, apperror.Validation("Job is already open")
	}
	j.status = JobStatusOpen
	j.updatedAt = now
	return j, nil
}

func validateJobDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", apperror.Validation("Job description cannot be empty")
	}
	n := utf8.RuneCountInString(trimmed)
	if n < JobDescriptionMinLength {
		return "", apperror.Validationf("Job description must be at least %d characters", JobDescriptionMinLength)
	}
	if n > JobDescriptionMaxLength {
		return "", apperror.Validationf("Job description cannot exceed %d characters", JobDescriptionMaxLength)
	}
	return trimmed, nil
}

type JobRepository interface {
	FindByID(ctx context.Context, id string) (Job, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]Job, error)
	FindByStatus(ctx context.Context, status JobStatus) ([]Job, error)
	FindAllOpen(ctx context.Context) ([]Job, error)
	FindAllOpenPaginated(ctx context.Context, params PaginationParams) (PaginatedResult[Job], error)
	CountOpen(ctx context.Context) (int64, error)
	Save(ctx context.Context, job Job) error
	Update(ctx context.Context, job Job) error
	Delete(ctx context.Context, id string) error
}

type CreateJobInput struct {
	Title       string
	Description string
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor Actor, in CreateJobInput) (Job, error)
	ListJobs(ctx context.Context, page, limit int) (PaginatedResult[Job], error)
	GetJob(ctx context.Context, id string) (Job, error)
	ListMyJobs(ctx context.Context, actor Actor) ([]Job, error)
	CloseJob(ctx context.Context, actor Actor, id string) (Job, error)
	ReopenJob(ctx context.Context, actor Actor, id string) (Job, error)
}
