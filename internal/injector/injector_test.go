package injector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/circlesweep/internal/config"
	"github.com/zeusync/circlesweep/internal/core/observability/log"
)

func TestInitializeRunner(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "error"

	runner, cleanup, err := InitializeRunner(cfg)
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()
	require.Len(t, runner.Scenarios(), 1)

	summaries, err := runner.Run(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, summaries[0].Steps)
}

func TestInitializeRunnerBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "shout"

	_, cleanup, err := InitializeRunner(cfg)
	assert.Error(t, err)
	assert.Nil(t, cleanup)
}

type syncCountingCore struct {
	zapcore.Core
	syncs int
}

func (c *syncCountingCore) Sync() error {
	c.syncs++
	return c.Core.Sync()
}

func TestSyncOnCloseFlushesLogger(t *testing.T) {
	obs, _ := observer.New(zapcore.InfoLevel)
	core := &syncCountingCore{Core: obs}

	cleanup := syncOnClose(log.FromZap(zap.New(core)))
	assert.Equal(t, 0, core.syncs)
	cleanup()
	assert.Equal(t, 1, core.syncs)
}
