package sim

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/zeusync/circlesweep/internal/config"
	"github.com/zeusync/circlesweep/internal/core/observability/log"
	"github.com/zeusync/circlesweep/internal/core/obstacles"
	"github.com/zeusync/circlesweep/internal/core/systems"
	"github.com/zeusync/circlesweep/internal/core/systems/physics"
)

// Summary is the outcome of a finished run.
type Summary struct {
	Name       string
	Steps      int
	Collisions int
	Final      physics.MotionState
	Digest     uint64
}

var _ systems.System = (*Simulation)(nil)

// Simulation steps a single circle through a static obstacle set.
// It is single-threaded; callers must not share it between goroutines.
type Simulation struct {
	name      string
	dt        float64
	steps     int
	resolver  *physics.Resolver
	obstacles *obstacles.Set
	redirects []config.Redirect

	state      physics.MotionState
	step       int
	collisions int
	trace      *Trace
	logger     log.Log
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithTrace replaces the default digest-only trace.
func WithTrace(t *Trace) Option {
	return func(s *Simulation) { s.trace = t }
}

// New builds the initial state for a scenario.
func New(sc config.Scenario, logger log.Log, opts ...Option) (*Simulation, error) {
	sc.ApplyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	policy, err := physics.ParseCornerPolicy(sc.CornerPolicy)
	if err != nil {
		return nil, err
	}
	state, err := physics.NewMotionState(sc.Start, sc.Direction, sc.Speed, sc.Radius)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	set := obstacles.New()
	for _, b := range sc.Obstacles {
		set.Add(b)
	}

	resolver := physics.NewResolver(set, policy)
	resolver.SweepDistance = sc.SweepDistance

	redirects := append([]config.Redirect(nil), sc.Redirects...)
	sort.SliceStable(redirects, func(i, j int) bool { return redirects[i].Step < redirects[j].Step })

	if logger == nil {
		logger = log.Nop()
	}

	s := &Simulation{
		name:      sc.Name,
		dt:        sc.FixedDelta,
		steps:     sc.Steps,
		resolver:  resolver,
		obstacles: set,
		redirects: redirects,
		state:     state,
		trace:     NewTrace(false),
		logger:    logger.With(log.String("scenario", sc.Name)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Simulation) Name() string               { return s.name }
func (s *Simulation) State() physics.MotionState { return s.state }
func (s *Simulation) StepCount() int             { return s.step }
func (s *Simulation) Collisions() int            { return s.collisions }
func (s *Simulation) Trace() *Trace              { return s.trace }
func (s *Simulation) Obstacles() *obstacles.Set  { return s.obstacles }
func (s *Simulation) FixedDelta() float64        { return s.dt }

// FixedUpdate lets a systems.FixedStep driver advance the simulation.
func (s *Simulation) FixedUpdate(dt float64) error {
	_, err := s.StepDelta(dt)
	return err
}

// Step advances the simulation by its fixed delta.
func (s *Simulation) Step() (physics.StepResult, error) {
	return s.StepDelta(s.dt)
}

// StepDelta advances the simulation by dt, applying any redirect due at the
// current step first. On error nothing is committed.
func (s *Simulation) StepDelta(dt float64) (physics.StepResult, error) {
	state, pending := s.state, s.redirects
	for len(pending) > 0 && pending[0].Step <= s.step {
		r := pending[0]
		pending = pending[1:]

		aimed, err := state.Aim(r.Target)
		if err != nil {
			s.logger.Warn("redirect ignored", log.Int("step", s.step), log.Error(err))
			continue
		}
		state = aimed
	}

	next, res, err := s.resolver.Advance(state, dt)
	if err != nil {
		var cerr *physics.EdgeClassificationError
		if errors.As(err, &cerr) {
			s.logger.Warn("edge classification failed",
				log.Int("step", s.step),
				log.Float64("contact_x", cerr.Contact.X),
				log.Float64("contact_y", cerr.Contact.Y),
			)
		}
		return res, fmt.Errorf("step %d: %w", s.step, err)
	}

	s.state = next
	s.redirects = pending
	s.step++
	s.trace.Record(res)

	if res.Collided {
		s.collisions++
		if s.logger.Enabled(log.LevelDebug) {
			s.logger.Debug("collision",
				log.Int("step", s.step),
				log.Stringer("side", res.Side),
				log.Float64("toi", res.TimeOfImpact),
				log.Float64("x", res.Position.X),
				log.Float64("y", res.Position.Y),
			)
		}
	}
	return res, nil
}

// Run performs steps fixed steps, or the scenario's configured count when
// steps is zero or negative.
func (s *Simulation) Run(ctx context.Context, steps int) (Summary, error) {
	if steps <= 0 {
		steps = s.steps
	}

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return s.Summary(), err
		}
		if _, err := s.Step(); err != nil {
			s.logger.Error("simulation halted", log.Error(err))
			return s.Summary(), err
		}
	}

	summary := s.Summary()
	s.logger.Info("simulation finished",
		log.Int("steps", summary.Steps),
		log.Int("collisions", summary.Collisions),
		log.Uint64("digest", summary.Digest),
	)
	return summary, nil
}

func (s *Simulation) Summary() Summary {
	return Summary{
		Name:       s.name,
		Steps:      s.step,
		Collisions: s.collisions,
		Final:      s.state,
		Digest:     s.trace.Digest(),
	}
}
