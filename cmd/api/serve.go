package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-api/config"
	v1 "go-jobboard-api/internal/delivery/http/v1"
	"go-jobboard-api/internal/usecase"
	"go-jobboard-api/pkg/auth"
	"go-jobboard-api/pkg/logger"
	"go-jobboard-api/pkg/metrics"
	"go-jobboard-api/pkg/redis"
	"go-jobboard-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrate, _ := cmd.Flags().GetBool("migrate")
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, migrate)
		},
	}
	cmd.Flags().Bool("migrate", false, "apply pending migrations before serving (postgres only)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, migrate bool) error {
	log := logger.From(ctx)
	log.Info("starting job board api", zap.String("port", cfg.Port), zap.String("storage", cfg.StorageDriver))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStorage(ctx, cfg, migrate)
	if err != nil {
		return err
	}
	defer store.close()

	checks := map[string]usecase.HealthCheck{"database": store.ping}
	if cfg.RedisURL != "" {
		if err := redis.Initialize(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			log.Warn("redis unavailable, rate limiting falls back to memory", zap.Error(err))
		}
		checks["redis"] = redis.HealthCheck
		defer func() { _ = redis.Close() }()
	}

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(store.users, hasher),
		CandidateUC:   usecase.NewCandidateUsecase(store.candidates, store.users),
		CompanyUC:     usecase.NewCompanyUsecase(store.companies, store.users),
		JobUC:         usecase.NewJobUsecase(store.jobs, store.companies),
		ApplicationUC: usecase.NewApplicationUsecase(store.applications, store.jobs, store.candidates, store.companies),
		HealthUC:      usecase.NewHealthUsecase(checks),
		Tokens:        tokens,
		Issuer:        tokens,
		LoginGuard:    security.NewLoginTracker(security.DefaultLoginTrackerConfig(), security.DefaultLogger()),
		Metrics:       metrics.New(),
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	log.Info("server exited")
	return nil
}
