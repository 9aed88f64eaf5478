package physics

import (
	"errors"
	"fmt"
)

var (
	// Geometry errors

	ErrDegenerateSegment  = errors.New("degenerate segment: endpoints coincide")
	ErrEdgeClassification = errors.New("contact point matches no edge of the bounds")
	ErrDegenerateMotion   = errors.New("motion is parallel to the edge")
	ErrInvalidNormal      = errors.New("hit normal has zero length")

	// Motion state errors

	ErrZeroDirection = errors.New("direction has zero length")
	ErrInvalidRadius = errors.New("radius must be positive")
	ErrInvalidSpeed  = errors.New("speed must not be negative")
	ErrInvalidDelta  = errors.New("time delta must be positive")
	ErrNoSweepQuery  = errors.New("sweep query is not configured")
)

// EdgeClassificationError carries the inputs of a failed edge selection so the
// caller can decide on a fallback.
type EdgeClassificationError struct {
	Bounds  Bounds
	Contact Vec2
	Radius  float64
}

func (e *EdgeClassificationError) Error() string {
	return fmt.Sprintf("%s: contact (%g, %g) radius %g bounds [%g,%g]x[%g,%g]",
		ErrEdgeClassification.Error(), e.Contact.X, e.Contact.Y, e.Radius,
		e.Bounds.Left(), e.Bounds.Right(), e.Bounds.Bottom(), e.Bounds.Top())
}

func (e *EdgeClassificationError) Unwrap() error { return ErrEdgeClassification }
