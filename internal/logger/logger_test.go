package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })
	return logs
}

func TestLoggingBeforeInitializeIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("hello")
		InfoCtx(context.Background(), "hello")
		Error(nil)
	})
}

func TestWithFields(t *testing.T) {
	logs := withObserver(t)

	ctx := WithFields(context.Background(), zap.String("request_id", "r1"))
	ctx = WithFields(ctx, zap.String("route", "/api/stats"))
	InfoCtx(ctx, "handled")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "r1", fields["request_id"])
	assert.Equal(t, "/api/stats", fields["route"])
}

func TestErrorCtx(t *testing.T) {
	logs := withObserver(t)

	ErrorCtx(context.Background(), assert.AnError, zap.String("op", "create"))
	ErrorCtx(context.Background(), nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, assert.AnError.Error(), logs.All()[0].Message)
	assert.Equal(t, "error occurred", logs.All()[1].Message)
}

func TestInitialize(t *testing.T) {
	previous := log
	t.Cleanup(func() { log = previous })

	require.NoError(t, Initialize(Config{Debug: true, Service: "test"}))
	assert.NotNil(t, Default())
	assert.True(t, Default().Core().Enabled(zapcore.DebugLevel))
}
