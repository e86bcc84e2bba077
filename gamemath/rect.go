package gamemath

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Float64Source is satisfied by *rand.Rand from math/rand and math/rand/v2.
type Float64Source interface {
	Float64() float64
}

// ToPoint converts v to an r2.Point.
func ToPoint(v Vector) r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// RectFromCorners returns the rectangle spanned by two opposite corners.
func RectFromCorners(a, b Vector) r2.Rect {
	return r2.RectFromPoints(ToPoint(a), ToPoint(b))
}

// ShiftY moves r vertically by dy.
func ShiftY(r r2.Rect, dy float64) r2.Rect {
	return r2.Rect{
		X: r.X,
		Y: r1.Interval{Lo: r.Y.Lo + dy, Hi: r.Y.Hi + dy},
	}
}

// RandomPointIn draws x and y independently and uniformly from r.
func RandomPointIn(r r2.Rect, rng Float64Source) Vector {
	return Vector{
		X: Lerp(r.X.Lo, r.X.Hi, rng.Float64()),
		Y: Lerp(r.Y.Lo, r.Y.Hi, rng.Float64()),
	}
}

// RandomRange draws uniformly from [lo, hi).
func RandomRange(lo, hi float64, rng Float64Source) float64 {
	return Lerp(lo, hi, rng.Float64())
}
