package gamemath

// Integrate advances one body by a single tick of length timeSpeed.
// Friction is applied after the position update, to the updated velocity.
// The caller is responsible for clearing the pending acceleration.
func Integrate(position, velocity, acceleration Vector, timeSpeed, friction float64) (Vector, Vector) {
	velocity = velocity.Add(acceleration.MulScalar(timeSpeed))
	position = position.Add(velocity.MulScalar(timeSpeed))
	velocity = velocity.Sub(velocity.MulScalar(friction * timeSpeed))
	return position, velocity
}
