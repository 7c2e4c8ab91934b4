package logger_test

import (
	"context"
	"testing"

	"go-jobboard-api/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			logger.Init(env)
			require.NotNil(t, logger.Log)
		})
	}
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	ctx := logger.WithFields(context.Background(), zap.String("request_id", "abc"))
	logger.From(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["request_id"])
}

func TestFromWithoutLogger(t *testing.T) {
	assert.Equal(t, logger.Log, logger.From(context.Background()))
}
