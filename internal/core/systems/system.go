package systems

import (
	"errors"
	"fmt"
)

var ErrInvalidFixedDelta = errors.New("fixed delta must be positive")

// System is a processor stepped at a fixed rate by a driver loop.
type System interface {
	Name() string
	FixedUpdate(fixedDeltaTime float64) error
}

// DefaultMaxSteps caps the catch-up steps taken by one Advance call.
const DefaultMaxSteps = 8

// FixedStep converts variable frame time into whole fixed steps.
// Leftover time carries over to the next call.
type FixedStep struct {
	Delta    float64
	MaxSteps int

	accumulator float64
}

func NewFixedStep(delta float64) (*FixedStep, error) {
	if !(delta > 0) {
		return nil, ErrInvalidFixedDelta
	}
	return &FixedStep{Delta: delta, MaxSteps: DefaultMaxSteps}, nil
}

// Advance adds elapsed seconds and runs as many fixed updates as fit.
// When the cap is hit the remaining backlog is dropped.
func (f *FixedStep) Advance(elapsed float64, sys System) (int, error) {
	if !(f.Delta > 0) {
		return 0, ErrInvalidFixedDelta
	}
	if elapsed > 0 {
		f.accumulator += elapsed
	}

	maxSteps := f.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	steps := 0
	for f.accumulator >= f.Delta {
		if steps == maxSteps {
			f.accumulator = 0
			break
		}
		if err := sys.FixedUpdate(f.Delta); err != nil {
			return steps, fmt.Errorf("%s: %w", sys.Name(), err)
		}
		f.accumulator -= f.Delta
		steps++
	}
	return steps, nil
}

// Alpha is the fraction of a step left in the accumulator, for interpolation.
// It is zero when Delta is not positive.
func (f *FixedStep) Alpha() float64 {
	if !(f.Delta > 0) {
		return 0
	}
	return f.accumulator / f.Delta
}
