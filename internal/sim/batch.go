package sim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/circlesweep/internal/config"
	"github.com/zeusync/circlesweep/internal/core/observability/log"
)

// RunBatch runs independent scenarios concurrently, one goroutine each.
// Summaries keep the order of scenarios. The first error cancels the rest.
func RunBatch(ctx context.Context, scenarios []config.Scenario, steps int, logger log.Log) ([]Summary, error) {
	g, ctx := errgroup.WithContext(ctx)
	summaries := make([]Summary, len(scenarios))

	for i, sc := range scenarios {
		g.Go(func() error {
			s, err := New(sc, logger)
			if err != nil {
				return err
			}
			summaries[i], err = s.Run(ctx, steps)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return summaries, err
	}
	return summaries, nil
}

// Runner runs every scenario of a config.
type Runner struct {
	scenarios []config.Scenario
	logger    log.Log
}

func NewRunner(cfg *config.Config, logger *log.Logger) *Runner {
	return &Runner{scenarios: cfg.Scenarios, logger: logger}
}

func (r *Runner) Scenarios() []config.Scenario { return r.scenarios }

// Run executes all scenarios; steps <= 0 keeps each scenario's own count.
func (r *Runner) Run(ctx context.Context, steps int) ([]Summary, error) {
	r.logger.Info("running scenarios", log.Int("count", len(r.scenarios)), log.Int("steps", steps))
	return RunBatch(ctx, r.scenarios, steps, r.logger)
}
