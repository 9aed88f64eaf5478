package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/circlesweep/internal/core/observability/log"
	"github.com/zeusync/circlesweep/internal/core/systems/physics"
)

const (
	DefaultRadius     = 0.2
	DefaultSpeed      = 10.0
	DefaultFixedDelta = 0.005
	DefaultSteps      = 1000

	MinSpeed = 1.0
	MaxSpeed = 40.0
)

var (
	ErrNoScenarios     = errors.New("no scenarios configured")
	ErrDuplicateName   = errors.New("duplicate scenario name")
	ErrUnknownFormat   = errors.New("unknown config format")
	ErrInvalidObstacle = errors.New("obstacle extents must be positive")
	ErrNonFinite       = errors.New("value must be finite")
)

// Config is the top-level file layout.
type Config struct {
	Log       log.Config `json:"log" yaml:"log"`
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// Scenario describes one circle moving among static boxes.
type Scenario struct {
	Name          string           `json:"name" yaml:"name"`
	Radius        float64          `json:"radius,omitempty" yaml:"radius,omitempty"`
	Speed         float64          `json:"speed,omitempty" yaml:"speed,omitempty"`
	FixedDelta    float64          `json:"fixed_delta,omitempty" yaml:"fixed_delta,omitempty"`
	SweepDistance float64          `json:"sweep_distance,omitempty" yaml:"sweep_distance,omitempty"`
	Steps         int              `json:"steps,omitempty" yaml:"steps,omitempty"`
	Start         physics.Vec2     `json:"start" yaml:"start"`
	Direction     physics.Vec2     `json:"direction" yaml:"direction"`
	CornerPolicy  string           `json:"corner_policy,omitempty" yaml:"corner_policy,omitempty"`
	Obstacles     []physics.Bounds `json:"obstacles" yaml:"obstacles"`
	Redirects     []Redirect       `json:"redirects,omitempty" yaml:"redirects,omitempty"`
}

// Redirect re-aims the circle at Target before step Step runs.
type Redirect struct {
	Step   int          `json:"step" yaml:"step"`
	Target physics.Vec2 `json:"target" yaml:"target"`
}

// Default returns a single scenario: a circle bouncing inside a walled room.
func Default() *Config {
	c := &Config{
		Log: log.Config{Level: "info", Encoding: "json"},
		Scenarios: []Scenario{{
			Name:         "room",
			Direction:    physics.Vec2{X: 1, Y: 0.35},
			CornerPolicy: physics.CornerNearest.String(),
			Obstacles: []physics.Bounds{
				physics.NewBounds(physics.Vec2{Y: -5.5}, physics.Vec2{X: 6, Y: 0.5}),
				physics.NewBounds(physics.Vec2{Y: 5.5}, physics.Vec2{X: 6, Y: 0.5}),
				physics.NewBounds(physics.Vec2{X: -5.5}, physics.Vec2{X: 0.5, Y: 5}),
				physics.NewBounds(physics.Vec2{X: 5.5}, physics.Vec2{X: 0.5, Y: 5}),
				physics.NewBounds(physics.Vec2{X: 1.5, Y: 1.5}, physics.Vec2{X: 0.75, Y: 0.75}),
			},
		}},
	}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero-valued scenario fields.
func (c *Config) ApplyDefaults() {
	for i := range c.Scenarios {
		c.Scenarios[i].ApplyDefaults()
	}
}

func (s *Scenario) ApplyDefaults() {
	if s.Radius == 0 {
		s.Radius = DefaultRadius
	}
	if s.Speed == 0 {
		s.Speed = DefaultSpeed
	}
	if s.FixedDelta == 0 {
		s.FixedDelta = DefaultFixedDelta
	}
	if s.SweepDistance == 0 {
		s.SweepDistance = physics.DefaultSweepDistance
	}
	if s.Steps == 0 {
		s.Steps = DefaultSteps
	}
	if s.CornerPolicy == "" {
		s.CornerPolicy = physics.CornerReject.String()
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if len(c.Scenarios) == 0 {
		return ErrNoScenarios
	}

	seen := make(map[string]struct{}, len(c.Scenarios))
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, s.Name, err)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("scenario %d: %w: %s", i, ErrDuplicateName, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// Validate validates the scenario configuration
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return physics.ErrInvalidRadius
	}
	if !(s.Speed >= MinSpeed && s.Speed <= MaxSpeed) {
		return fmt.Errorf("speed %g outside [%g, %g]", s.Speed, MinSpeed, MaxSpeed)
	}
	if !(s.FixedDelta > 0) || math.IsInf(s.FixedDelta, 0) {
		return physics.ErrInvalidDelta
	}
	if !(s.SweepDistance > 0) || math.IsInf(s.SweepDistance, 0) {
		return fmt.Errorf("sweep distance must be positive, got %g", s.SweepDistance)
	}
	if s.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", s.Steps)
	}
	if !s.Start.IsFinite() {
		return fmt.Errorf("start: %w", ErrNonFinite)
	}
	if !s.Direction.IsFinite() {
		return fmt.Errorf("direction: %w", ErrNonFinite)
	}
	if _, ok := s.Direction.Normalize(); !ok {
		return physics.ErrZeroDirection
	}
	if _, err := physics.ParseCornerPolicy(s.CornerPolicy); err != nil {
		return err
	}

	for i, b := range s.Obstacles {
		if !b.Center.IsFinite() || !b.Extents.IsFinite() {
			return fmt.Errorf("obstacle %d: %w", i, ErrNonFinite)
		}
		if !b.Valid() {
			return fmt.Errorf("obstacle %d: %w", i, ErrInvalidObstacle)
		}
	}
	for i, r := range s.Redirects {
		if r.Step < 0 {
			return fmt.Errorf("redirect %d: step must not be negative", i)
		}
		if !r.Target.IsFinite() {
			return fmt.Errorf("redirect %d: %w", i, ErrNonFinite)
		}
	}
	return nil
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile picks the decoder by extension, applies defaults and validates.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var c *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = LoadYAML(f)
	case ".json":
		c, err = LoadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	c.ApplyDefaults()
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return c, nil
}
