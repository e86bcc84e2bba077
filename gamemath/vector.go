package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vector is donburi's 2D vector.
type Vector = dmath.Vec2

// LengthSquared returns |v|².
func LengthSquared(v Vector) float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceSquared returns |a-b|².
func DistanceSquared(a, b Vector) float64 {
	return LengthSquared(a.Sub(b))
}

// Heading returns the direction of v in radians, measured from +X toward +Y.
func Heading(v Vector) float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Lerp2D interpolates each component independently.
func Lerp2D(a, b Vector, t float64) Vector {
	return Vector{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// DecayTo moves current a factor fraction of the remaining distance toward
// target. Called once per tick it approaches target exponentially and never
// reaches it exactly.
func DecayTo(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// DecayTo2D applies DecayTo to both components.
func DecayTo2D(current, target Vector, factor float64) Vector {
	return Vector{X: DecayTo(current.X, target.X, factor), Y: DecayTo(current.Y, target.Y, factor)}
}
