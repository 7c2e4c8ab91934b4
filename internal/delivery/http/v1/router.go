package v1

import (
	"net/http"
	"time"

	"go-jobboard-api/config"
	_ "go-jobboard-api/docs"
	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"
	"go-jobboard-api/pkg/metrics"
	"go-jobboard-api/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	CompanyUC     domain.CompanyUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	HealthUC      usecase.HealthUsecase

	Tokens     middleware.TokenParser
	Issuer     TokenIssuer
	LoginGuard LoginGuard
	Metrics    *metrics.Metrics
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	globalCfg := middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)
	globalCfg.Recorder = deps.Metrics
	v1 := r.Group("/v1", middleware.RateLimitMiddleware(globalCfg))

	NewHealthHandler(v1, deps.HealthUC)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Account creation and login share the strict limiter.
	authCfg := middleware.AuthRateLimitConfig(cfg.RateLimitAuthThreshold, window)
	authCfg.Recorder = deps.Metrics
	authLimited := v1.Group("", middleware.RateLimitMiddleware(authCfg))

	protected := v1.Group("", middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(authLimited, protected, deps.AuthUC, deps.Issuer, deps.LoginGuard)
		NewUserHandler(authLimited, deps.AuthUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewCompanyHandler(protected, deps.CompanyUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})

	return r
}
