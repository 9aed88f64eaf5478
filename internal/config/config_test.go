package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/circlesweep/internal/core/systems/physics"
)

const sampleYAML = `
log:
  level: debug
  encoding: console
scenarios:
  - name: floor
    speed: 20
    start: {x: 0, y: 2}
    direction: {x: 0, y: -1}
    corner_policy: nearest
    obstacles:
      - center: {x: 0, y: -1}
        extents: {x: 4, y: 1}
    redirects:
      - step: 10
        target: {x: 3, y: 3}
`

func TestLoadYAML(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	c.ApplyDefaults()
	require.NoError(t, c.Validate())

	require.Len(t, c.Scenarios, 1)
	s := c.Scenarios[0]
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "floor", s.Name)
	assert.Equal(t, 20.0, s.Speed)
	assert.Equal(t, DefaultRadius, s.Radius)
	assert.Equal(t, DefaultFixedDelta, s.FixedDelta)
	assert.Equal(t, physics.DefaultSweepDistance, s.SweepDistance)
	assert.Equal(t, DefaultSteps, s.Steps)
	assert.Equal(t, physics.Vec2{Y: 2}, s.Start)
	assert.Equal(t, physics.NewBounds(physics.Vec2{Y: -1}, physics.Vec2{X: 4, Y: 1}), s.Obstacles[0])
	assert.Equal(t, Redirect{Step: 10, Target: physics.Vec2{X: 3, Y: 3}}, s.Redirects[0])
}

func TestLoadYAMLUnknownField(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("scenarios:\n  - name: a\n    radious: 1\n"))
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	c, err := LoadJSON(strings.NewReader(`{"scenarios":[{"name":"a","direction":{"x":1,"y":0}}]}`))
	require.NoError(t, err)
	c.ApplyDefaults()
	require.NoError(t, c.Validate())
	assert.Equal(t, "reject", c.Scenarios[0].CornerPolicy)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
		target error
	}{
		{"no name", func(s *Scenario) { s.Name = "" }, nil},
		{"radius", func(s *Scenario) { s.Radius = -1 }, physics.ErrInvalidRadius},
		{"speed", func(s *Scenario) { s.Speed = 41 }, nil},
		{"delta", func(s *Scenario) { s.FixedDelta = -0.1 }, physics.ErrInvalidDelta},
		{"direction", func(s *Scenario) { s.Direction = physics.Zero }, physics.ErrZeroDirection},
		{"policy", func(s *Scenario) { s.CornerPolicy = "guess" }, nil},
		{"obstacle", func(s *Scenario) { s.Obstacles[0].Extents.X = 0 }, ErrInvalidObstacle},
		{"redirect", func(s *Scenario) { s.Redirects = []Redirect{{Step: -1}} }, nil},
		{"nan start", func(s *Scenario) { s.Start.X = math.NaN() }, ErrNonFinite},
		{"inf direction", func(s *Scenario) { s.Direction.Y = math.Inf(1) }, ErrNonFinite},
		{"nan obstacle center", func(s *Scenario) { s.Obstacles[0].Center.Y = math.NaN() }, ErrNonFinite},
		{"inf obstacle extents", func(s *Scenario) { s.Obstacles[0].Extents.X = math.Inf(1) }, ErrNonFinite},
		{"nan redirect target", func(s *Scenario) { s.Redirects = []Redirect{{Target: physics.Vec2{X: math.NaN()}}} }, ErrNonFinite},
		{"nan speed", func(s *Scenario) { s.Speed = math.NaN() }, nil},
		{"inf radius", func(s *Scenario) { s.Radius = math.Inf(1) }, physics.ErrInvalidRadius},
		{"nan sweep distance", func(s *Scenario) { s.SweepDistance = math.NaN() }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c.Scenarios[0])
			err := c.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestValidateConfigLevel(t *testing.T) {
	c := Default()
	c.Scenarios = append(c.Scenarios, c.Scenarios[0])
	assert.ErrorIs(t, c.Validate(), ErrDuplicateName)

	c = Default()
	c.Scenarios = nil
	assert.ErrorIs(t, c.Validate(), ErrNoScenarios)

	c = Default()
	c.Log.Level = "loud"
	assert.Error(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))
	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nearest", c.Scenarios[0].CornerPolicy)

	bad := filepath.Join(dir, "sim.toml")
	require.NoError(t, os.WriteFile(bad, []byte(""), 0o600))
	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	invalid := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"scenarios":[]}`), 0o600))
	_, err = LoadFile(invalid)
	assert.ErrorIs(t, err, ErrNoScenarios)
}

func TestLoadYAMLRejectsNaN(t *testing.T) {
	doc := strings.Replace(sampleYAML, "start: {x: 0, y: 2}", "start: {x: .nan, y: 2}", 1)
	c, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	c.ApplyDefaults()
	assert.ErrorIs(t, c.Validate(), ErrNonFinite)
}
