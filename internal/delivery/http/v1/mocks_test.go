package v1

import (
	"context"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"
	"go-jobboard-api/pkg/security"

	"github.com/stretchr/testify/mock"
)

type MockAuthUC struct {
	mock.Mock
}

func (m *MockAuthUC) Register(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthUC) CreateUser(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthUC) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthUC) GetCurrentUser(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockCandidateUC struct {
	mock.Mock
}

func (m *MockCandidateUC) CreateCandidate(ctx context.Context, actor domain.Actor, resume string) (domain.Candidate, error) {
	args := m.Called(ctx, actor, resume)
	return args.Get(0).(domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) GetMyProfile(ctx context.Context, actor domain.Actor) (domain.Candidate, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) UpdateResume(ctx context.Context, actor domain.Actor, resume string) (domain.Candidate, error) {
	args := m.Called(ctx, actor, resume)
	return args.Get(0).(domain.Candidate), args.Error(1)
}

type MockCompanyUC struct {
	mock.Mock
}

func (m *MockCompanyUC) CreateCompany(ctx context.Context, actor domain.Actor, in domain.CompanyInput) (domain.Company, error) {
	args := m.Called(ctx, actor, in)
	return args.Get(0).(domain.Company), args.Error(1)
}

func (m *MockCompanyUC) GetMyCompany(ctx context.Context, actor domain.Actor) (domain.Company, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(domain.Company), args.Error(1)
}

func (m *MockCompanyUC) UpdateCompany(ctx context.Context, actor domain.Actor, in domain.CompanyInput) (domain.Company, error) {
	args := m.Called(ctx, actor, in)
	return args.Get(0).(domain.Company), args.Error(1)
}

type MockJobUC struct {
	mock.Mock
}

func (m *MockJobUC) CreateJob(ctx context.Context, actor domain.Actor, in domain.CreateJobInput) (domain.Job, error) {
	args := m.Called(ctx, actor, in)
	return args.Get(0).(domain.Job), args.Error(1)
}

func (m *MockJobUC) ListJobs(ctx context.Context, page, limit int) (domain.PaginatedResult[domain.Job], error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(domain.PaginatedResult[domain.Job]), args.Error(1)
}

func (m *MockJobUC) GetJob(ctx context.Context, id string) (domain.Job, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Job), args.Error(1)
}

func (m *MockJobUC) ListMyJobs(ctx context.Context, actor domain.Actor) ([]domain.Job, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobUC) CloseJob(ctx context.Context, actor domain.Actor, id string) (domain.Job, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Job), args.Error(1)
}

func (m *MockJobUC) ReopenJob(ctx context.Context, actor domain.Actor, id string) (domain.Job, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Job), args.Error(1)
}

type MockApplicationUC struct {
	mock.Mock
}

func (m *MockApplicationUC) Apply(ctx context.Context, actor domain.Actor, jobID string) (domain.Application, error) {
	args := m.Called(ctx, actor, jobID)
	return args.Get(0).(domain.Application), args.Error(1)
}

func (m *MockApplicationUC) Accept(ctx context.Context, actor domain.Actor, id string) (domain.Application, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Application), args.Error(1)
}

func (m *MockApplicationUC) Reject(ctx context.Context, actor domain.Actor, id string) (domain.Application, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListJobApplications(ctx context.Context, actor domain.Actor, jobID string) ([]domain.Application, error) {
	args := m.Called(ctx, actor, jobID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListMyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListCompanyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Application), args.Error(1)
}

type MockLoginGuard struct {
	mock.Mock
}

func (m *MockLoginGuard) IsBlocked(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoginGuard) RecordFailedAttempt(ctx context.Context, email string, meta security.RequestMeta) (bool, int, error) {
	args := m.Called(ctx, email, meta)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockLoginGuard) ClearAttempts(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type stubHealth struct {
	report usecase.HealthReport
}

func (s stubHealth) Check(context.Context) usecase.HealthReport {
	return s.report
}
