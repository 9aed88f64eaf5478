//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/circlesweep/internal/config"
	"github.com/zeusync/circlesweep/internal/sim"
)

func InitializeRunner(cfg *config.Config) (*sim.Runner, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
