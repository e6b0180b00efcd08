package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "f", Value: 2.5}, Float64("f", 2.5))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
}

func TestErrField(t *testing.T) {
	assert.Equal(t, "<nil>", Err(nil).Value)
	assert.Equal(t, "boom", Err(errors.New("boom")).Value)
	assert.Equal(t, "error", Err(nil).Key)
}

func TestZapLogger_EmitsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFromCore(core)

	logger.Info("snapshot built",
		String("source", "embedded"),
		Int("regions", 20),
		Float64("mean_score", 41.5),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "snapshot built", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "embedded", fields["source"])
	assert.Equal(t, int64(20), fields["regions"])
	assert.Equal(t, 41.5, fields["mean_score"])
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFromCore(core).Named("engine").With(String("component", "scorer"))

	logger.Warn("zero-variance category")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "engine", entry.LoggerName)
	assert.Equal(t, "scorer", entry.ContextMap()["component"])
}

func TestNewLogger_Defaults(t *testing.T) {
	logger, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	l := NewNopLogger()
	l.Debug("a")
	l.Info("b", Int("x", 1))
	l.Warn("c")
	l.Error("d", Err(errors.New("e")))
	assert.NotNil(t, l.With(String("k", "v")).Named("n"))
}
