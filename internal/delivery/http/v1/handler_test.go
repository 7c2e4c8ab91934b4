package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-jobboard-api/config"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/auth"
	"go-jobboard-api/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	candidateActor = domain.Actor{UserID: "user-cand", Email: "cand@example.com", Role: domain.RoleCandidate}
	companyActor   = domain.Actor{UserID: "user-comp", Email: "comp@example.com", Role: domain.RoleCompany}
)

type testAPI struct {
	router     *gin.Engine
	tokens     *auth.TokenManager
	auth       *MockAuthUC
	candidates *MockCandidateUC
	companies  *MockCompanyUC
	jobs       *MockJobUC
	apps       *MockApplicationUC
	guard      *MockLoginGuard
	health     *stubHealth
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		tokens:     auth.NewTokenManager("test-secret", "jobboard-test", time.Hour),
		auth:       new(MockAuthUC),
		candidates: new(MockCandidateUC),
		companies:  new(MockCompanyUC),
		jobs:       new(MockJobUC),
		apps:       new(MockApplicationUC),
		guard:      new(MockLoginGuard),
		health:     &stubHealth{report: usecase.HealthReport{Status: "ok", Components: map[string]string{"database": "up"}}},
	}

	api.router = NewRouter(RouterDeps{
		AuthUC:        api.auth,
		CandidateUC:   api.candidates,
		CompanyUC:     api.companies,
		JobUC:         api.jobs,
		ApplicationUC: api.apps,
		HealthUC:      api.health,
		Tokens:        api.tokens,
		Issuer:        api.tokens,
		LoginGuard:    api.guard,
		Metrics:       metrics.New(),
		Config: &config.Config{
			Environment:              "test",
			CORSAllowedOrigins:       []string{"http://localhost:3000"},
			RateLimitWindowSeconds:   60,
			RateLimitAuthThreshold:   10000,
			RateLimitGlobalThreshold: 10000,
		},
	})

	t.Cleanup(func() {
		api.auth.AssertExpectations(t)
		api.candidates.AssertExpectations(t)
		api.companies.AssertExpectations(t)
		api.jobs.AssertExpectations(t)
		api.apps.AssertExpectations(t)
		api.guard.AssertExpectations(t)
	})
	return api
}

func (api *testAPI) tokenFor(t *testing.T, actor domain.Actor) string {
	t.Helper()
	token, err := api.tokens.Issue(actor.UserID, actor.Email, string(actor.Role))
	require.NoError(t, err)
	return token
}

func (api *testAPI) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func dataMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, ok := decodeBody(t, rec).Data.(map[string]interface{})
	require.True(t, ok, rec.Body.String())
	return data
}

func dataList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	data, ok := decodeBody(t, rec).Data.([]interface{})
	require.True(t, ok, rec.Body.String())
	return data
}

func mustUser(t *testing.T, id, email string, role domain.UserRole) domain.User {
	t.Helper()
	e, err := domain.NewEmail(email)
	require.NoError(t, err)
	hash, err := domain.PasswordHashFromStored("$2a$10$storedhash")
	require.NoError(t, err)
	u, err := domain.NewUser(id, e, hash, "Jane Doe", role, fixedNow)
	require.NoError(t, err)
	return u
}

func mustJob(t *testing.T, id string) domain.Job {
	t.Helper()
	title, err := domain.NewJobTitle("Backend Engineer")
	require.NoError(t, err)
	j, err := domain.NewJob(id, "comp-1", title, "Build and operate the hiring platform APIs.", fixedNow)
	require.NoError(t, err)
	return j
}

func mustApplication(t *testing.T, id string) domain.Application {
	t.Helper()
	a, err := domain.NewApplication(id, "cand-1", "job-1", fixedNow)
	require.NoError(t, err)
	return a
}

func TestRegister(t *testing.T) {
	t.Run("returns user and token", func(t *testing.T) {
		api := newTestAPI(t)
		in := domain.RegisterInput{Email: "jane@example.com", Password: "secret1", Name: "Jane Doe", Role: "candidate"}
		api.auth.On("Register", mock.Anything, in).
			Return(mustUser(t, "user-1", "jane@example.com", domain.RoleCandidate), nil).Once()

		rec := api.do(http.MethodPost, "/v1/auth/register",
			`{"email":"jane@example.com","password":"secret1","name":"Jane Doe","role":"candidate"}`, "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		data := dataMap(t, rec)
		user := data["user"].(map[string]interface{})
		assert.Equal(t, "user-1", user["id"])
		assert.Equal(t, "CANDIDATE", user["role"])
		assert.NotContains(t, rec.Body.String(), "storedhash")

		claims, err := api.tokens.Parse(data["token"].(string))
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "CANDIDATE", claims.Role)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		api := newTestAPI(t)
		api.auth.On("Register", mock.Anything, mock.Anything).
			Return(domain.User{}, apperror.Conflict("User with this email already exists")).Once()

		rec := api.do(http.MethodPost, "/v1/auth/register",
			`{"email":"jane@example.com","password":"secret1","name":"Jane","role":"COMPANY"}`, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "User with this email already exists", decodeBody(t, rec).Message)
	})

	t.Run("unknown role never reaches the use case", func(t *testing.T) {
		api := newTestAPI(t)
		rec := api.do(http.MethodPost, "/v1/auth/register",
			`{"email":"jane@example.com","password":"secret1","name":"Jane","role":"ADMIN"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Role must be CANDIDATE or COMPANY", decodeBody(t, rec).Message)
		api.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		api := newTestAPI(t)
		rec := api.do(http.MethodPost, "/v1/auth/register", `{"email":`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeBody(t, rec).Message)
	})
}

func TestLogin(t *testing.T) {
	body := `{"email":"jane@example.com","password":"secret1"}`

	t.Run("success clears failed attempts", func(t *testing.T) {
		api := newTestAPI(t)
		api.guard.On("IsBlocked", mock.Anything, "jane@example.com").Return(false, nil).Once()
		api.auth.On("Authenticate", mock.Anything, "jane@example.com", "secret1").
			Return(mustUser(t, "user-1", "jane@example.com", domain.RoleCompany), nil).Once()
		api.guard.On("ClearAttempts", mock.Anything, "jane@example.com").Return(nil).Once()

		rec := api.do(http.MethodPost, "/v1/auth/login", body, "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotEmpty(t, dataMap(t, rec)["token"])
	})

	t.Run("bad credentials are recorded", func(t *testing.T) {
		api := newTestAPI(t)
		api.guard.On("IsBlocked", mock.Anything, "jane@example.com").Return(false, nil).Once()
		api.auth.On("Authenticate", mock.Anything, "jane@example.com", "secret1").
			Return(domain.User{}, apperror.InvalidCredentials()).Once()
		api.guard.On("RecordFailedAttempt", mock.Anything, "jane@example.com", mock.AnythingOfType("security.RequestMeta")).
			Return(false, 1, nil).Once()

		rec := api.do(http.MethodPost, "/v1/auth/login", body, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec).Message)
	})

	t.Run("blocked email is refused before authentication", func(t *testing.T) {
		api := newTestAPI(t)
		api.guard.On("IsBlocked", mock.Anything, "jane@example.com").Return(true, nil).Once()

		rec := api.do(http.MethodPost, "/v1/auth/login", body, "")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		api.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMe(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	api.auth.On("GetCurrentUser", mock.Anything, "user-cand").
		Return(mustUser(t, "user-cand", "cand@example.com", domain.RoleCandidate), nil).Once()
	rec = api.do(http.MethodGet, "/v1/auth/me", "", api.tokenFor(t, candidateActor))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cand@example.com", dataMap(t, rec)["email"])
}

func TestCreateUserIssuesNoToken(t *testing.T) {
	api := newTestAPI(t)
	api.auth.On("CreateUser", mock.Anything, mock.Anything).
		Return(mustUser(t, "user-9", "new@example.com", domain.RoleCompany), nil).Once()

	rec := api.do(http.MethodPost, "/v1/users",
		`{"email":"new@example.com","password":"secret1","name":"New Co","role":"COMPANY"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	data := dataMap(t, rec)
	assert.Equal(t, "user-9", data["id"])
	assert.NotContains(t, data, "token")
}

func TestCandidateRoutes(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, candidateActor)

	cand, err := domain.NewCandidate("cand-1", "user-cand", "Ten years of Go.", fixedNow)
	require.NoError(t, err)
	api.candidates.On("CreateCandidate", mock.Anything, candidateActor, "Ten years of Go.").Return(cand, nil).Once()

	rec := api.do(http.MethodPost, "/v1/candidates", `{"resume":"Ten years of Go."}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "cand-1", dataMap(t, rec)["id"])

	api.candidates.On("CreateCandidate", mock.Anything, companyActor, "").
		Return(domain.Candidate{}, apperror.Validation("Only users with CANDIDATE role can create a candidate profile")).Once()
	rec = api.do(http.MethodPost, "/v1/candidates", `{}`, api.tokenFor(t, companyActor))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	api.candidates.On("UpdateResume", mock.Anything, candidateActor, "Updated").Return(cand, nil).Once()
	rec = api.do(http.MethodPatch, "/v1/candidates/me", `{"resume":"Updated"}`, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompanyRoutes(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, companyActor)

	api.companies.On("GetMyCompany", mock.Anything, companyActor).
		Return(domain.Company{}, apperror.NotFoundMsg("Company profile not found")).Once()
	rec := api.do(http.MethodGet, "/v1/companies/me", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Company profile not found", decodeBody(t, rec).Message)

	comp, err := domain.NewCompany("comp-1", "user-comp", "Acme Corp", "Rockets", fixedNow)
	require.NoError(t, err)
	in := domain.CompanyInput{CompanyName: "Acme Corp", Description: "Rockets"}
	api.companies.On("CreateCompany", mock.Anything, companyActor, in).Return(comp, nil).Once()
	rec = api.do(http.MethodPost, "/v1/companies", `{"companyName":"Acme Corp","description":"Rockets"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Acme Corp", dataMap(t, rec)["companyName"])
}

func TestJobRoutes(t *testing.T) {
	t.Run("public list passes raw paging to the use case", func(t *testing.T) {
		api := newTestAPI(t)
		params := domain.ValidatePaginationParams(0, 5)
		page := domain.NewPaginatedResult([]domain.Job{mustJob(t, "job-1")}, 11, params)
		api.jobs.On("ListJobs", mock.Anything, 0, 5).Return(page, nil).Once()

		rec := api.do(http.MethodGet, "/v1/jobs?page=abc&limit=5", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, rec)
		assert.Len(t, data["data"], 1)
		pagination := data["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["page"])
		assert.Equal(t, float64(3), pagination["totalPages"])
	})

	t.Run("public detail needs no token", func(t *testing.T) {
		api := newTestAPI(t)
		api.jobs.On("GetJob", mock.Anything, "job-1").Return(mustJob(t, "job-1"), nil).Once()

		rec := api.do(http.MethodGet, "/v1/jobs/job-1", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OPEN", dataMap(t, rec)["status"])
	})

	t.Run("create requires a token", func(t *testing.T) {
		api := newTestAPI(t)
		rec := api.do(http.MethodPost, "/v1/jobs", `{"title":"x","description":"y"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("closing another company's job is forbidden", func(t *testing.T) {
		api := newTestAPI(t)
		api.jobs.On("CloseJob", mock.Anything, companyActor, "job-1").
			Return(domain.Job{}, apperror.Unauthorized("You can only modify your own jobs")).Once()

		rec := api.do(http.MethodPatch, "/v1/jobs/job-1/close", "", api.tokenFor(t, companyActor))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("my jobs", func(t *testing.T) {
		api := newTestAPI(t)
		api.jobs.On("ListMyJobs", mock.Anything, companyActor).Return([]domain.Job{mustJob(t, "job-1"), mustJob(t, "job-2")}, nil).Once()

		rec := api.do(http.MethodGet, "/v1/companies/me/jobs", "", api.tokenFor(t, companyActor))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, dataList(t, rec), 2)
	})
}

func TestApplicationRoutes(t *testing.T) {
	t.Run("apply", func(t *testing.T) {
		api := newTestAPI(t)
		token := api.tokenFor(t, candidateActor)
		api.apps.On("Apply", mock.Anything, candidateActor, "job-1").Return(mustApplication(t, "app-1"), nil).Once()
		api.apps.On("Apply", mock.Anything, candidateActor, "job-1").
			Return(domain.Application{}, apperror.Conflict("You have already applied to this job")).Once()

		rec := api.do(http.MethodPost, "/v1/applications", `{"jobId":"job-1"}`, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "PENDING", dataMap(t, rec)["status"])

		rec = api.do(http.MethodPost, "/v1/applications", `{"jobId":"job-1"}`, token)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("apply without job id", func(t *testing.T) {
		api := newTestAPI(t)
		rec := api.do(http.MethodPost, "/v1/applications", `{}`, api.tokenFor(t, candidateActor))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Job ID is required", decodeBody(t, rec).Message)
	})

	t.Run("accept", func(t *testing.T) {
		api := newTestAPI(t)
		accepted, err := mustApplication(t, "app-1").Accept(fixedNow.Add(time.Hour))
		require.NoError(t, err)
		api.apps.On("Accept", mock.Anything, companyActor, "app-1").Return(accepted, nil).Once()

		rec := api.do(http.MethodPatch, "/v1/applications/app-1/accept", "", api.tokenFor(t, companyActor))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ACCEPTED", dataMap(t, rec)["status"])
	})

	t.Run("reject a final application", func(t *testing.T) {
		api := newTestAPI(t)
		api.apps.On("Reject", mock.Anything, companyActor, "app-1").
			Return(domain.Application{}, apperror.Validation("Cannot reject application with status ACCEPTED")).Once()

		rec := api.do(http.MethodPatch, "/v1/applications/app-1/reject", "", api.tokenFor(t, companyActor))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("listings", func(t *testing.T) {
		api := newTestAPI(t)
		apps := []domain.Application{mustApplication(t, "app-1")}
		api.apps.On("ListMyApplications", mock.Anything, candidateActor).Return(apps, nil).Once()
		api.apps.On("ListJobApplications", mock.Anything, companyActor, "job-1").Return(apps, nil).Once()
		api.apps.On("ListCompanyApplications", mock.Anything, companyActor).Return([]domain.Application{}, nil).Once()

		rec := api.do(http.MethodGet, "/v1/applications/me", "", api.tokenFor(t, candidateActor))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, dataList(t, rec), 1)

		rec = api.do(http.MethodGet, "/v1/jobs/job-1/applications", "", api.tokenFor(t, companyActor))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, dataList(t, rec), 1)

		rec = api.do(http.MethodGet, "/v1/companies/me/applications", "", api.tokenFor(t, companyActor))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, dataList(t, rec))
	})
}

func TestHealthAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/v1/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", dataMap(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	api.health.report = usecase.HealthReport{Status: "degraded", Components: map[string]string{"database": "down"}}
	rec = api.do(http.MethodGet, "/v1/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = api.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `jobboard_http_requests_total{method="GET",route="/v1/health",status="200"} 1`)

	rec = api.do(http.MethodGet, "/v1/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
