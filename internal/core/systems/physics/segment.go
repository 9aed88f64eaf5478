package physics

// ClosestPointOnSegment projects q onto the segment p1-p2 and clamps the
// projection to the endpoints.
func ClosestPointOnSegment(p1, p2, q Vec2) (Vec2, error) {
	seg := p2.Sub(p1)
	length := seg.Length()
	if length == 0 {
		return Vec2{}, ErrDegenerateSegment
	}

	unit := seg.Scale(1 / length)
	proj := q.Sub(p1).Dot(unit)

	if proj <= 0 {
		return p1, nil
	}
	if proj >= length {
		return p2, nil
	}
	return p1.Add(unit.Scale(proj)), nil
}
