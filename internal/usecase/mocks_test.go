package usecase_test

import (
	"context"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) Save(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) FindByID(ctx context.Context, id string) (domain.Candidate, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) FindByUserID(ctx context.Context, userID string) (domain.Candidate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCandidateRepo) Save(ctx context.Context, c domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, c domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) FindByID(ctx context.Context, id string) (domain.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) FindByUserID(ctx context.Context, userID string) (domain.Company, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepo) Save(ctx context.Context, c domain.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepo) Update(ctx context.Context, c domain.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) FindByID(ctx context.Context, id string) (domain.Job, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Job), args.Error(1)
}

func (m *MockJobRepo) FindByCompanyID(ctx context.Context, companyID string) ([]domain.Job, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) FindByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) FindAllOpen(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) FindAllOpenPaginated(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResult[domain.Job], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.PaginatedResult[domain.Job]), args.Error(1)
}

func (m *MockJobRepo) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) Save(ctx context.Context, job domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Update(ctx context.Context, job domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) FindByID(ctx context.Context, id string) (domain.Application, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) list(args mock.Arguments) ([]domain.Application, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FindByCandidateID(ctx context.Context, candidateID string) ([]domain.Application, error) {
	return m.list(m.Called(ctx, candidateID))
}

func (m *MockApplicationRepo) FindByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	return m.list(m.Called(ctx, jobID))
}

func (m *MockApplicationRepo) FindByCompanyID(ctx context.Context, companyID string) ([]domain.Application, error) {
	return m.list(m.Called(ctx, companyID))
}

func (m *MockApplicationRepo) FindByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	return m.list(m.Called(ctx, status))
}

func (m *MockApplicationRepo) ExistsByCandidateAndJob(ctx context.Context, candidateID, jobID string) (bool, error) {
	args := m.Called(ctx, candidateID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) Save(ctx context.Context, a domain.Application) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepo) Update(ctx context.Context, a domain.Application) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// fakeHasher avoids bcrypt cost in unit tests.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Compare(plain, hash string) bool  { return hash == "hashed:"+plain }

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testOpts(id string) []usecase.Option {
	return []usecase.Option{
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithIDGenerator(func() string { return id }),
	}
}

// Fixtures

func mustUser(id, email string, role domain.UserRole) domain.User {
	e, err := domain.NewEmail(email)
	if err != nil {
		panic(err)
	}
	pw, err := domain.NewPasswordHash(fakeHasher{}, "secret1")
	if err != nil {
		panic(err)
	}
	u, err := domain.NewUser(id, e, pw, "Test User", role, fixedNow)
	if err != nil {
		panic(err)
	}
	return u
}

func mustCandidate(id, userID string) domain.Candidate {
	c, err := domain.NewCandidate(id, userID, "", fixedNow)
	if err != nil {
		panic(err)
	}
	return c
}

func mustCompany(id, userID string) domain.Company {
	c, err := domain.NewCompany(id, userID, "Acme", "", fixedNow)
	if err != nil {
		panic(err)
	}
	return c
}

func mustJob(id, companyID string, open bool) domain.Job {
	title, err := domain.NewJobTitle("Backend Engineer")
	if err != nil {
		panic(err)
	}
	j, err := domain.NewJob(id, companyID, title, "Write and operate Go services.", fixedNow)
	if err != nil {
		panic(err)
	}
	if !open {
		j, err = j.Close(fixedNow)
		if err != nil {
			panic(err)
		}
	}
	return j
}

func mustApplication(id, candidateID, jobID string) domain.Application {
	a, err := domain.NewApplication(id, candidateID, jobID, fixedNow)
	if err != nil {
		panic(err)
	}
	return a
}

var (
	candidateActor = domain.Actor{UserID: "user-cand", Role: domain.RoleCandidate}
	companyActor   = domain.Actor{UserID: "user-comp", Role: domain.RoleCompany}
)
