package main

import (
	"log"
	"os"

	"go-jobboard-api/config"
	"go-jobboard-api/pkg/logger"
	"go-jobboard-api/pkg/security"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "go-jobboard-api"

// @title           Job Board API
// @version         1.0
// @description     Job-application platform: candidates apply to jobs posted by companies.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Environment)
	security.InitSecurityLogger(serviceName, cfg.Environment)

	defer func() {
		if p := recover(); p != nil {
			logger.Log.Error("captured panic, exiting", zap.Any("panic", p))
			logger.Sync()
			panic(p)
		}
	}()

	rootCmd := &cobra.Command{
		Use:   "jobboard",
		Short: "Job-application platform API",
	}
	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		hashCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
