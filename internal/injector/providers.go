package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/circlesweep/internal/config"
	"github.com/zeusync/circlesweep/internal/core/observability/log"
	"github.com/zeusync/circlesweep/internal/sim"
)

var ProviderSet = wire.NewSet(ProvideLogger, sim.NewRunner)

// ProvideLogger builds the logger from cfg. The cleanup flushes buffered
// entries.
func ProvideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	logger, err := log.NewWithConfig(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return logger, syncOnClose(logger), nil
}

func syncOnClose(l log.Log) func() {
	return func() {
		// Sync on a terminal stderr reports EINVAL on some platforms.
		_ = l.Sync()
	}
}
