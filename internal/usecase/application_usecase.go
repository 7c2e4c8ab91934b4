package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/logger"

	"go.uber.org/zap"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	companyRepo     domain.CompanyRepository
	rt              runtime
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	companyRepo domain.CompanyRepository,
	opts ...Option,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		companyRepo:     companyRepo,
		rt:              newRuntime(opts),
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, actor domain.Actor, jobID string) (domain.Application, error) {
	if !actor.IsCandidate() {
		return domain.Application{}, apperror.Unauthorized("Only candidates can apply to jobs")
	}
	if strings.TrimSpace(jobID) == "" {
		return domain.Application{}, apperror.Validation("Job ID is required")
	}

	candidate, err := resolveCandidate(ctx, u.candidateRepo, actor)
	if err != nil {
		return domain.Application{}, err
	}
	job, err := u.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return domain.Application{}, notFoundOr(err, apperror.NotFound("Job", jobID), "find job")
	}
	if !job.IsOpen() {
		return domain.Application{}, apperror.Validation("Cannot apply to a closed job")
	}

	exists, err := u.applicationRepo.ExistsByCandidateAndJob(ctx, candidate.ID(), job.ID())
	if err != nil {
		return domain.Application{}, fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		return domain.Application{}, apperror.Conflict("You have already applied to this job")
	}

	application, err := domain.NewApplication(u.rt.newID(), candidate.ID(), job.ID(), u.rt.now())
	if err != nil {
		return domain.Application{}, err
	}
	// A concurrent duplicate that slipped past the check above is caught by the
	// (candidate_id, job_id) unique constraint.
	if err := u.applicationRepo.Save(ctx, application); err != nil {
		return domain.Application{}, conflictOr(err, "You have already applied to this job", "save application")
	}

	logger.From(ctx).Info("application submitted",
		zap.String("application_id", application.ID()),
		zap.String("job_id", job.ID()),
	)
	return application, nil
}

func (u *applicationUsecase) Accept(ctx context.Context, actor domain.Actor, applicationID string) (domain.Application, error) {
	return u.decide(ctx, actor, applicationID, "accept", domain.Application.Accept)
}

func (u *applicationUsecase) Reject(ctx context.Context, actor domain.Actor, applicationID string) (domain.Application, error) {
	return u.decide(ctx, actor, applicationID, "reject", domain.Application.Reject)
}

func (u *applicationUsecase) decide(
	ctx context.Context,
	actor domain.Actor,
	applicationID, verb string,
	transition func(domain.Application, time.Time) (domain.Application, error),
) (domain.Application, error) {
	if !actor.IsCompany() {
		return domain.Application{}, apperror.Unauthorized(fmt.Sprintf("Only companies can %s applications", verb))
	}
	if strings.TrimSpace(applicationID) == "" {
		return domain.Application{}, apperror.Validation("Application ID is required")
	}

	company, err := resolveCompany(ctx, u.companyRepo, actor)
	if err != nil {
		return domain.Application{}, err
	}
	application, err := u.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return domain.Application{}, notFoundOr(err, apperror.NotFound("Application", applicationID), "find application")
	}
	job, err := u.jobRepo.FindByID(ctx, application.JobID())
	if err != nil {
		return domain.Application{}, notFoundOr(err, apperror.NotFound("Job", application.JobID()), "find job")
	}
	if !job.BelongsToCompany(company.ID()) {
		return domain.Application{}, apperror.Unauthorized(fmt.Sprintf("You can only %s applications for your own jobs", verb))
	}

	updated, err := transition(application, u.rt.now())
	if err != nil {
		return domain.Application{}, err
	}
	if err := u.applicationRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, domain.ErrStaleState) {
			return domain.Application{}, apperror.Conflict("Application has already been decided")
		}
		return domain.Application{}, notFoundOr(err, apperror.NotFound("Application", applicationID), "update application")
	}

	logger.From(ctx).Info("application status changed",
		zap.String("application_id", updated.ID()),
		zap.String("status", string(updated.Status())),
	)
	return updated, nil
}

func (u *applicationUsecase) ListJobApplications(ctx context.Context, actor domain.Actor, jobID string) ([]domain.Application, error) {
	if !actor.IsCompany() {
		return nil, apperror.Unauthorized("Only companies can view job applications")
	}
	company, err := resolveCompany(ctx, u.companyRepo, actor)
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOr(err, apperror.NotFound("Job", jobID), "find job")
	}
	if !job.BelongsToCompany(company.ID()) {
		return nil, apperror.Unauthorized("You can only view applications for your own jobs")
	}

	applications, err := u.applicationRepo.FindByJobID(ctx, job.ID())
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return applications, nil
}

func (u *applicationUsecase) ListMyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if !actor.IsCandidate() {
		return nil, apperror.Unauthorized("Only candidates can view their applications")
	}
	candidate, err := resolveCandidate(ctx, u.candidateRepo, actor)
	if err != nil {
		return nil, err
	}
	applications, err := u.applicationRepo.FindByCandidateID(ctx, candidate.ID())
	if err != nil {
		return nil, fmt.Errorf("list candidate applications: %w", err)
	}
	return applications, nil
}

func (u *applicationUsecase) ListCompanyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if !actor.IsCompany() {
		return nil, apperror.Unauthorized("Only companies can view received applications")
	}
	company, err := resolveCompany(ctx, u.companyRepo, actor)
	if err != nil {
		return nil, err
	}
	applications, err := u.applicationRepo.FindByCompanyID(ctx, company.ID())
	if err != nil {
		return nil, fmt.Errorf("list company applications: %w", err)
	}
	return applications, nil
}
