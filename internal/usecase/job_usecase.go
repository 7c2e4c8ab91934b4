package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/logger"

	"go.uber.org/zap"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	rt          runtime
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository, opts ...Option) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		rt:          newRuntime(opts),
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.Actor, in domain.CreateJobInput) (domain.Job, error) {
	if !actor.IsCompany() {
		return domain.Job{}, apperror.Unauthorized("Only companies can create jobs")
	}
	if strings.TrimSpace(in.Title) == "" {
		return domain.Job{}, apperror.Validation("Job title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return domain.Job{}, apperror.Validation("Job description is required")
	}

	// The owning company always comes from the caller's identity.
	company, err := resolveCompany(ctx, u.companyRepo, actor)
	if err != nil {
		return domain.Job{}, err
	}

	title, err := domain.NewJobTitle(in.Title)
	if err != nil {
		return domain.Job{}, err
	}
	job, err := domain.NewJob(u.rt.newID(), company.ID(), title, in.Description, u.rt.now())
	if err != nil {
		return domain.Job{}, err
	}
	if err := u.jobRepo.Save(ctx, job); err != nil {
		return domain.Job{}, fmt.Errorf("save job: %w", err)
	}

	logger.From(ctx).Info("job created", zap.String("job_id", job.ID()), zap.String("company_id", company.ID()))
	return job, nil
}

// ListJobs returns one page of OPEN jobs. Bad paging input is sanitized.
func (u *jobUsecase) ListJobs(ctx context.Context, page, limit int) (domain.PaginatedResult[domain.Job], error) {
	params := domain.ValidatePaginationParams(page, limit)
	result, err := u.jobRepo.FindAllOpenPaginated(ctx, params)
	if err != nil {
		return domain.PaginatedResult[domain.Job]{}, fmt.Errorf("list open jobs: %w", err)
	}
	return result, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (domain.Job, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Job{}, apperror.Validation("Job ID is required")
	}
	job, err := u.jobRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, notFoundOr(err, apperror.NotFound("Job", id), "find job")
	}
	return job, nil
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, actor domain.Actor) ([]domain.Job, error) {
	if !actor.IsCompany() {
		return nil, apperror.Unauthorized("Only companies can list their jobs")
	}
	company, err := resolveCompany(ctx, u.companyRepo, actor)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.FindByCompanyID(ctx, company.ID())
	if err != nil {
		return nil, fmt.Errorf("list company jobs: %w", err)
	}
	return jobs, nil
}

func (u *jobUsecase) CloseJob(ctx context.Context, actor domain.Actor, id string) (domain.Job, error) {
	return u.changeStatus(ctx, actor, id, "close", domain.Job.Close)
}

func (u *jobUsecase) ReopenJob(ctx context.Context, actor domain.Actor, id string) (domain.Job, error) {
	return u.changeStatus(ctx, actor, id, "reopen", domain.Job.Reopen)
}

func (u *jobUsecase) changeStatus(
	ctx context.Context,
	actor domain.Actor,
	id, verb string,
	transition func(domain.Job, time.Time) (domain.Job, error),
) (domain.Job, error) {
	if !actor.IsCompany() {
		return domain.Job{}, apperror.Unauthorized(fmt.Sprintf("Only companies can %s jobs", verb))
	}
	company, err := resolveCompany(ctx, u.companyRepo, actor)
	if err != nil {
		return domain.Job{}, err
	}
	job, err := u.GetJob(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if !job.BelongsToCompany(company.ID()) {
		return domain.Job{}, apperror.Unauthorized(fmt.Sprintf("You can only %s your own jobs", verb))
	}

	updated, err := transition(job, u.rt.now())
	if err != nil {
		return domain.Job{}, err
	}
	if err := u.jobRepo.Update(ctx, updated); err != nil {
		return domain.Job{}, notFoundOr(err, apperror.NotFound("Job", id), "update job")
	}

	logger.From(ctx).Info("job status changed", zap.String("job_id", id), zap.String("status", string(updated.Status())))
	return updated, nil
}
