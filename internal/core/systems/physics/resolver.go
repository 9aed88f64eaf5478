package physics

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// motionEpsilon bounds the normal-distance delta below which the step is
// treated as parallel to the edge.
const motionEpsilon = 1e-12

// Hit is the result of a circle sweep against the obstacles.
type Hit struct {
	ObstacleID uuid.UUID
	Bounds     Bounds
	// Point is the circle center at the moment of contact.
	Point    Vec2
	Normal   Vec2
	Distance float64
}

// SweepQuery casts a circle from origin along dir and reports the nearest
// obstacle hit within maxDistance.
type SweepQuery interface {
	CircleCast(origin Vec2, radius float64, dir Vec2, maxDistance float64) (Hit, bool)
}

// SweepQueryFunc adapts a function to SweepQuery.
type SweepQueryFunc func(origin Vec2, radius float64, dir Vec2, maxDistance float64) (Hit, bool)

func (f SweepQueryFunc) CircleCast(origin Vec2, radius float64, dir Vec2, maxDistance float64) (Hit, bool) {
	return f(origin, radius, dir, maxDistance)
}

// StepResult is the outcome of one step. Edge and Contact are diagnostic and
// only meaningful when HasHit is set.
type StepResult struct {
	Position     Vec2
	Direction    Vec2
	Collided     bool
	TimeOfImpact float64
	HasHit       bool
	Side         Side
	Edge         Edge
	Contact      Vec2
}

type resolveOptions struct {
	corner CornerPolicy
}

type ResolveOption func(*resolveOptions)

// WithCornerPolicy sets how unclassifiable contacts are handled.
func WithCornerPolicy(p CornerPolicy) ResolveOption {
	return func(o *resolveOptions) { o.corner = p }
}

// ResolveStep resolves a single step from current to next against the edge
// struck by hit. When the circle would touch the edge within the step the
// returned position is clipped to the impact point and dir is reflected about
// the hit normal; otherwise next and dir are returned unchanged.
func ResolveStep(current, next, dir Vec2, radius float64, hit Hit, opts ...ResolveOption) (StepResult, error) {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if radius <= 0 {
		return StepResult{}, ErrInvalidRadius
	}
	normal, ok := hit.Normal.Normalize()
	if !ok {
		return StepResult{}, ErrInvalidNormal
	}

	edge, side, err := o.corner.selectEdge(hit.Bounds, hit.Point, radius)
	if err != nil {
		return StepResult{}, err
	}

	collisionPoint, err := ClosestPointOnSegment(edge.P1, edge.P2, hit.Point)
	if err != nil {
		return StepResult{}, err
	}

	res := StepResult{
		Position:  next,
		Direction: dir,
		HasHit:    true,
		Side:      side,
		Edge:      edge,
		Contact:   hit.Point,
	}

	t, err := timeOfImpact(current, next, collisionPoint, normal, radius)
	if errors.Is(err, ErrDegenerateMotion) || t < 0 || t > 1 {
		return res, nil
	}
	t = math.Min(math.Max(t, 0), 1)

	res.Position = current.Add(next.Sub(current).Scale(t))
	res.Direction = dir.Reflect(normal)
	res.Collided = true
	res.TimeOfImpact = t
	return res, nil
}

// timeOfImpact returns the fraction of the step at which the circle surface
// reaches the edge line through point with the given normal.
func timeOfImpact(current, next, point, normal Vec2, radius float64) (float64, error) {
	currentDist := current.Sub(point).Dot(normal)
	nextDist := next.Sub(point).Dot(normal)

	delta := nextDist - currentDist
	if math.Abs(delta) <= motionEpsilon {
		return 0, ErrDegenerateMotion
	}

	t := (radius - currentDist) / delta
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, ErrDegenerateMotion
	}
	return t, nil
}

// DefaultSweepDistance is the cast range used when none is configured.
const DefaultSweepDistance = 100.0

// Resolver advances a MotionState using an injected SweepQuery.
type Resolver struct {
	Query         SweepQuery
	CornerPolicy  CornerPolicy
	SweepDistance float64
}

func NewResolver(query SweepQuery, policy CornerPolicy) *Resolver {
	return &Resolver{Query: query, CornerPolicy: policy, SweepDistance: DefaultSweepDistance}
}

// Advance moves state forward by dt. A sweep miss advances the circle
// unclipped without invoking the resolver. The direction is renormalized
// before moving. On error the state is returned unchanged.
func (r *Resolver) Advance(state MotionState, dt float64) (MotionState, StepResult, error) {
	if r.Query == nil {
		return state, StepResult{}, ErrNoSweepQuery
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return state, StepResult{}, ErrInvalidDelta
	}

	unit, ok := state.Direction.Normalize()
	if !ok {
		return state, StepResult{Position: state.Position, Direction: state.Direction}, nil
	}
	moved := state
	moved.Direction = unit
	next := moved.NextPosition(dt)

	rng := r.SweepDistance
	if rng <= 0 {
		rng = DefaultSweepDistance
	}
	if step := state.Speed * dt; step > rng {
		rng = step
	}

	hit, ok := r.Query.CircleCast(state.Position, state.Radius, unit, rng)
	if !ok {
		moved.Position = next
		return moved, StepResult{Position: next, Direction: unit}, nil
	}

	res, err := ResolveStep(state.Position, next, unit, state.Radius, hit, WithCornerPolicy(r.CornerPolicy))
	if err != nil {
		return state, StepResult{}, err
	}

	moved.Position = res.Position
	moved.Direction = res.Direction
	return moved, res, nil
}
