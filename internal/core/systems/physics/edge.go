package physics

import (
	"fmt"
	"math"
)

// Edge is a line segment between two endpoints.
type Edge struct {
	P1 Vec2 `json:"p1" yaml:"p1"`
	P2 Vec2 `json:"p2" yaml:"p2"`
}

func (e Edge) Length() float64 { return Distance(e.P1, e.P2) }

func (e Edge) IsDegenerate() bool { return e.P1 == e.P2 }

// Side identifies one of the four edges of a Bounds.
type Side uint8

const (
	SideNone Side = iota
	SideBottom
	SideTop
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// EdgeOf returns the segment for the given side. Horizontal edges run left to
// right, vertical edges bottom to top.
func (b Bounds) EdgeOf(s Side) Edge {
	switch s {
	case SideBottom:
		return Edge{P1: Vec2{X: b.Left(), Y: b.Bottom()}, P2: Vec2{X: b.Right(), Y: b.Bottom()}}
	case SideTop:
		return Edge{P1: Vec2{X: b.Left(), Y: b.Top()}, P2: Vec2{X: b.Right(), Y: b.Top()}}
	case SideLeft:
		return Edge{P1: Vec2{X: b.Left(), Y: b.Bottom()}, P2: Vec2{X: b.Left(), Y: b.Top()}}
	case SideRight:
		return Edge{P1: Vec2{X: b.Right(), Y: b.Bottom()}, P2: Vec2{X: b.Right(), Y: b.Top()}}
	default:
		return Edge{}
	}
}

// sideOrder is the fixed test order; the first matching band wins.
var sideOrder = [...]Side{SideBottom, SideTop, SideLeft, SideRight}

// SelectEdge classifies contact against the four edges of b. Each band is
// widened by radius along the edge so contacts near the ends still match.
// A contact inside the box or in a corner zone yields *EdgeClassificationError.
func SelectEdge(b Bounds, contact Vec2, radius float64) (Edge, Side, error) {
	inX := contact.X >= b.Left()-radius && contact.X <= b.Right()+radius
	inY := contact.Y >= b.Bottom()-radius && contact.Y <= b.Top()+radius

	for _, s := range sideOrder {
		var match bool
		switch s {
		case SideBottom:
			match = contact.Y < b.Bottom() && inX
		case SideTop:
			match = contact.Y > b.Top() && inX
		case SideLeft:
			match = contact.X < b.Left() && inY
		case SideRight:
			match = contact.X > b.Right() && inY
		}
		if match {
			return b.EdgeOf(s), s, nil
		}
	}

	return Edge{}, SideNone, &EdgeClassificationError{Bounds: b, Contact: contact, Radius: radius}
}

// NearestEdge picks the edge closest to contact. Ties keep the
// bottom, top, left, right order.
func NearestEdge(b Bounds, contact Vec2) (Edge, Side, error) {
	best, bestSide := Edge{}, SideNone
	bestDist := math.Inf(1)
	for _, s := range sideOrder {
		e := b.EdgeOf(s)
		p, err := ClosestPointOnSegment(e.P1, e.P2, contact)
		if err != nil {
			return Edge{}, SideNone, fmt.Errorf("%s edge: %w", s, err)
		}
		if d := p.Sub(contact).LengthSquared(); d < bestDist {
			best, bestSide, bestDist = e, s, d
		}
	}
	return best, bestSide, nil
}

// CornerPolicy decides what happens when SelectEdge cannot classify a contact.
type CornerPolicy uint8

const (
	// CornerReject surfaces the classification error to the caller.
	CornerReject CornerPolicy = iota
	// CornerNearest falls back to the nearest edge by distance.
	CornerNearest
)

func (p CornerPolicy) String() string {
	switch p {
	case CornerNearest:
		return "nearest"
	default:
		return "reject"
	}
}

// ParseCornerPolicy accepts "reject" (or empty) and "nearest".
func ParseCornerPolicy(s string) (CornerPolicy, error) {
	switch s {
	case "", "reject":
		return CornerReject, nil
	case "nearest":
		return CornerNearest, nil
	default:
		return CornerReject, fmt.Errorf("unknown corner policy %q", s)
	}
}

func (p CornerPolicy) selectEdge(b Bounds, contact Vec2, radius float64) (Edge, Side, error) {
	e, s, err := SelectEdge(b, contact, radius)
	if err == nil || p != CornerNearest {
		return e, s, err
	}
	return NearestEdge(b, contact)
}
