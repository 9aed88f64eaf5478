package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"":        LevelInfo,
		"debug":   LevelDebug,
		"WARN":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.With(String("scenario", "bounce")).Debug("collision",
		Int("step", 3),
		Float64("toi", 0.5),
		Bool("collided", true),
		Uint64("digest", 42),
		Error(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "collision", entry.Message)

	ctx := entry.ContextMap()
	assert.Equal(t, "bounce", ctx["scenario"])
	assert.Equal(t, int64(3), ctx["step"])
	assert.Equal(t, 0.5, ctx["toi"])
	assert.Equal(t, true, ctx["collided"])
	assert.Equal(t, uint64(42), ctx["digest"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLoggerLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := FromZap(zap.New(core))

	assert.False(t, l.Enabled(LevelInfo))
	assert.True(t, l.Enabled(LevelError))

	l.Info("dropped")
	l.Warn("kept")
	assert.Equal(t, 1, logs.Len())
}

func TestNewWithConfigRejectsLevel(t *testing.T) {
	_, err := NewWithConfig(Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("ignored")
	assert.NotNil(t, Provide())
}
