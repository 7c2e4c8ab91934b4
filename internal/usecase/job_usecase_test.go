package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"
	"go-jobboard-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	ctx := context.Background()
	in := domain.CreateJobInput{Title: "Backend Engineer", Description: "Write and operate Go services."}

	t.Run("company creates an open job", func(t *testing.T) {
		jobs, companies := new(MockJobRepo), new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobs, companies, testOpts("job-1")...)

		companies.On("FindByUserID", ctx, "user-comp").Return(mustCompany("co-1", "user-comp"), nil)
		jobs.On("Save", ctx, mock.AnythingOfType("domain.Job")).Return(nil)

		job, err := uc.CreateJob(ctx, companyActor, in)
		require.NoError(t, err)
		assert.Equal(t, "job-1", job.ID())
		assert.Equal(t, "co-1", job.CompanyID())
		assert.True(t, job.IsOpen())
	})

	t.Run("candidate cannot create jobs", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo), new(MockCompanyRepo))
		_, err := uc.CreateJob(ctx, candidateActor, in)
		assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
	})

	t.Run("missing company profile is not found", func(t *testing.T) {
		companies := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(new(MockJobRepo), companies)
		companies.On("FindByUserID", ctx, "user-comp").Return(domain.Company{}, domain.ErrNotFound)

		_, err := uc.CreateJob(ctx, companyActor, in)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})

	t.Run("invalid title and description", func(t *testing.T) {
		companies := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(new(MockJobRepo), companies)
		companies.On("FindByUserID", ctx, "user-comp").Return(mustCompany("co-1", "user-comp"), nil)

		for _, bad := range []domain.CreateJobInput{
			{Title: "", Description: in.Description},
			{Title: "Go", Description: in.Description},
			{Title: in.Title, Description: "short"},
		} {
			_, err := uc.CreateJob(ctx, companyActor, bad)
			assert.True(t, apperror.Is(err, apperror.KindValidation), "%+v", bad)
		}
	})
}

func TestListJobsSanitizesPaging(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	uc := usecase.NewJobUsecase(jobs, new(MockCompanyRepo))

	params := domain.PaginationParams{Page: 1, Limit: 100}
	page := domain.NewPaginatedResult([]domain.Job{mustJob("job-1", "co-1", true)}, 1, params)
	jobs.On("FindAllOpenPaginated", ctx, params).Return(page, nil)

	result, err := uc.ListJobs(ctx, 0, 500)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Pagination.TotalPages)
	jobs.AssertExpectations(t)
}

func TestGetJob(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	uc := usecase.NewJobUsecase(jobs, new(MockCompanyRepo))
	jobs.On("FindByID", ctx, "nope").Return(domain.Job{}, domain.ErrNotFound)

	_, err := uc.GetJob(ctx, "nope")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestCloseAndReopenJob(t *testing.T) {
	ctx := context.Background()

	setup := func(job domain.Job) (domain.JobUsecase, *MockJobRepo) {
		jobs, companies := new(MockJobRepo), new(MockCompanyRepo)
		companies.On("FindByUserID", ctx, "user-comp").Return(mustCompany("co-1", "user-comp"), nil)
		jobs.On("FindByID", ctx, job.ID()).Return(job, nil)
		jobs.On("Update", ctx, mock.AnythingOfType("domain.Job")).Return(nil)
		return usecase.NewJobUsecase(jobs, companies, testOpts("x")...), jobs
	}

	t.Run("owner closes open job", func(t *testing.T) {
		uc, _ := setup(mustJob("job-1", "co-1", true))
		job, err := uc.CloseJob(ctx, companyActor, "job-1")
		require.NoError(t, err)
		assert.True(t, job.IsClosed())
	})

	t.Run("closing a closed job fails", func(t *testing.T) {
		uc, jobs := setup(mustJob("job-1", "co-1", false))
		_, err := uc.CloseJob(ctx, companyActor, "job-1")
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("owner reopens closed job", func(t *testing.T) {
		uc, _ := setup(mustJob("job-1", "co-1", false))
		job, err := uc.ReopenJob(ctx, companyActor, "job-1")
		require.NoError(t, err)
		assert.True(t, job.IsOpen())
	})

	t.Run("non owner is unauthorized", func(t *testing.T) {
		uc, _ := setup(mustJob("job-1", "co-other", true))
		_, err := uc.CloseJob(ctx, companyActor, "job-1")
		assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
	})
}

func TestListMyJobs(t *testing.T) {
	ctx := context.Background()
	jobs, companies := new(MockJobRepo), new(MockCompanyRepo)
	uc := usecase.NewJobUsecase(jobs, companies)

	companies.On("FindByUserID", ctx, "user-comp").Return(mustCompany("co-1", "user-comp"), nil)
	jobs.On("FindByCompanyID", ctx, "co-1").Return([]domain.Job{mustJob("job-1", "co-1", true)}, nil)

	list, err := uc.ListMyJobs(ctx, companyActor)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
