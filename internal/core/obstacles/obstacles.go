package obstacles

import (
	"math"

	"github.com/google/uuid"

	"github.com/zeusync/circlesweep/internal/core/systems/physics"
)

var _ physics.SweepQuery = (*Set)(nil)

// Obstacle is a static axis-aligned box.
type Obstacle struct {
	ID     uuid.UUID
	Bounds physics.Bounds
}

// Set holds static obstacles and answers circle casts against them.
// It is not safe for concurrent mutation.
type Set struct {
	items map[uuid.UUID]physics.Bounds
	order []uuid.UUID
}

func New() *Set {
	return &Set{items: make(map[uuid.UUID]physics.Bounds)}
}

// Add registers b and returns its id.
func (s *Set) Add(b physics.Bounds) uuid.UUID {
	id := uuid.New()
	s.items[id] = b
	s.order = append(s.order, id)
	return id
}

func (s *Set) Remove(id uuid.UUID) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Set) Get(id uuid.UUID) (physics.Bounds, bool) {
	b, ok := s.items[id]
	return b, ok
}

func (s *Set) Len() int { return len(s.order) }

// All returns obstacles in insertion order.
func (s *Set) All() []Obstacle {
	out := make([]Obstacle, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Obstacle{ID: id, Bounds: s.items[id]})
	}
	return out
}

// CircleCast sweeps a circle of radius from origin along dir and returns the
// closest obstacle it touches within maxDistance. Hit.Point is the circle
// center at contact and Hit.Normal points from the box toward it. Obstacles
// already overlapping the circle at origin are ignored. Ties go to the
// earlier inserted obstacle.
func (s *Set) CircleCast(origin physics.Vec2, radius float64, dir physics.Vec2, maxDistance float64) (physics.Hit, bool) {
	dir, ok := dir.Normalize()
	if !ok || maxDistance <= 0 || radius < 0 {
		return physics.Hit{}, false
	}

	var (
		best  physics.Hit
		found bool
	)
	best.Distance = maxDistance

	for _, id := range s.order {
		b := s.items[id]
		if overlaps(origin, radius, b) {
			continue
		}
		t, normal, ok := castBox(origin, dir, b, radius)
		if !ok || t > best.Distance || (found && t == best.Distance) {
			continue
		}
		best = physics.Hit{
			ObstacleID: id,
			Bounds:     b,
			Point:      origin.Add(dir.Scale(t)),
			Normal:     normal,
			Distance:   t,
		}
		found = true
	}

	return best, found
}

// overlaps reports whether a circle at center intersects b.
func overlaps(center physics.Vec2, radius float64, b physics.Bounds) bool {
	if b.Contains(center) {
		return true
	}
	return b.ClosestPoint(center).Sub(center).LengthSquared() < radius*radius
}

// castBox intersects the ray origin+t*dir with the centers at which a circle
// of radius touches b: the four faces pushed out by radius and a quarter
// circle around each corner. dir must be unit length. It returns the entry
// distance and the contact normal.
func castBox(origin, dir physics.Vec2, b physics.Bounds, radius float64) (float64, physics.Vec2, bool) {
	best := math.Inf(1)
	var normal physics.Vec2

	// o and d run along the face normal, po and pd along the face.
	faces := [...]struct {
		normal         physics.Vec2
		o, d, line     float64
		po, pd, lo, hi float64
	}{
		{physics.Vec2{X: -1}, -origin.X, -dir.X, radius - b.Left(), origin.Y, dir.Y, b.Bottom(), b.Top()},
		{physics.Vec2{X: 1}, origin.X, dir.X, b.Right() + radius, origin.Y, dir.Y, b.Bottom(), b.Top()},
		{physics.Vec2{Y: -1}, -origin.Y, -dir.Y, radius - b.Bottom(), origin.X, dir.X, b.Left(), b.Right()},
		{physics.Vec2{Y: 1}, origin.Y, dir.Y, b.Top() + radius, origin.X, dir.X, b.Left(), b.Right()},
	}
	for _, f := range faces {
		// Only faces the ray moves against.
		if f.d >= 0 {
			continue
		}
		t := (f.line - f.o) / f.d
		if t < 0 || t >= best {
			continue
		}
		if p := f.po + t*f.pd; p < f.lo || p > f.hi {
			continue
		}
		best, normal = t, f.normal
	}

	corners := [...]physics.Vec2{b.Min(), {X: b.Right(), Y: b.Bottom()}, {X: b.Left(), Y: b.Top()}, b.Max()}
	for _, c := range corners {
		t, ok := castCircle(origin, dir, c, radius)
		if !ok || t >= best {
			continue
		}
		n, ok := origin.Add(dir.Scale(t)).Sub(c).Normalize()
		if !ok {
			continue
		}
		best, normal = t, n
	}

	if math.IsInf(best, 1) {
		return 0, physics.Vec2{}, false
	}
	return best, normal, true
}

// castCircle returns the first t >= 0 at which origin+t*dir is radius away
// from c.
func castCircle(origin, dir, c physics.Vec2, radius float64) (float64, bool) {
	m := origin.Sub(c)
	b := m.Dot(dir)
	q := m.LengthSquared() - radius*radius
	if q > 0 && b > 0 {
		return 0, false
	}
	disc := b*b - q
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, false
	}
	return t, true
}
