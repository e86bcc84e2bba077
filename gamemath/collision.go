package gamemath

// CirclesOverlap reports whether two circles intersect. Touching circles
// (centers exactly r1+r2 apart) do not overlap.
func CirclesOverlap(p1 Vector, r1 float64, p2 Vector, r2 float64) bool {
	r := r1 + r2
	return DistanceSquared(p1, p2) < r*r
}

// PointInCircle reports whether point lies strictly inside the circle.
func PointInCircle(center Vector, radius float64, point Vector) bool {
	return DistanceSquared(center, point) < radius*radius
}
