package physics

import "math"

// MotionState is the circle's kinematic state between steps.
type MotionState struct {
	Position  Vec2
	Direction Vec2
	Speed     float64
	Radius    float64
}

// NewMotionState validates the inputs and normalizes dir.
func NewMotionState(pos, dir Vec2, speed, radius float64) (MotionState, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return MotionState{}, ErrInvalidRadius
	}
	if !(speed >= 0) || math.IsInf(speed, 0) {
		return MotionState{}, ErrInvalidSpeed
	}
	unit, ok := dir.Normalize()
	if !ok {
		return MotionState{}, ErrZeroDirection
	}
	return MotionState{Position: pos, Direction: unit, Speed: speed, Radius: radius}, nil
}

// Aim points the direction at target.
func (s MotionState) Aim(target Vec2) (MotionState, error) {
	unit, ok := target.Sub(s.Position).Normalize()
	if !ok {
		return s, ErrZeroDirection
	}
	s.Direction = unit
	return s, nil
}

// NextPosition is the unobstructed position after dt.
func (s MotionState) NextPosition(dt float64) Vec2 {
	return s.Position.Add(s.Direction.Scale(s.Speed * dt))
}
