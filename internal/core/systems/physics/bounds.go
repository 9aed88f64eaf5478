package physics

import "math"

// Bounds is an axis-aligned box described by its center and half-extents.
type Bounds struct {
	Center  Vec2 `json:"center" yaml:"center"`
	Extents Vec2 `json:"extents" yaml:"extents"`
}

func NewBounds(center, extents Vec2) Bounds {
	return Bounds{Center: center, Extents: extents}
}

// BoundsFromMinMax builds a box from two opposite corners.
func BoundsFromMinMax(min, max Vec2) Bounds {
	return Bounds{
		Center:  Vec2{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2},
		Extents: Vec2{X: (max.X - min.X) / 2, Y: (max.Y - min.Y) / 2},
	}
}

func (b Bounds) Left() float64   { return b.Center.X - b.Extents.X }
func (b Bounds) Right() float64  { return b.Center.X + b.Extents.X }
func (b Bounds) Bottom() float64 { return b.Center.Y - b.Extents.Y }
func (b Bounds) Top() float64    { return b.Center.Y + b.Extents.Y }

func (b Bounds) Min() Vec2 { return Vec2{X: b.Left(), Y: b.Bottom()} }
func (b Bounds) Max() Vec2 { return Vec2{X: b.Right(), Y: b.Top()} }

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Inflate grows the box by r on every side.
func (b Bounds) Inflate(r float64) Bounds {
	return Bounds{Center: b.Center, Extents: Vec2{X: b.Extents.X + r, Y: b.Extents.Y + r}}
}

// Valid reports whether both extents are positive.
func (b Bounds) Valid() bool {
	return b.Extents.X > 0 && b.Extents.Y > 0
}

// ClosestPoint returns the point of the box nearest to p. Points inside the
// box are returned unchanged.
func (b Bounds) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: math.Min(math.Max(p.X, b.Left()), b.Right()),
		Y: math.Min(math.Max(p.Y, b.Bottom()), b.Top()),
	}
}
