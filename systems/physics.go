package systems

import (
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates every body by the current time speed.
func UpdatePhysics(w donburi.World) {
	timeSpeed := timeData(w).Speed
	components.Physics.Each(w, func(e *donburi.Entry) {
		IntegrateBody(components.Physics.Get(e), timeSpeed)
	})
}

// IntegrateBody advances a single body and clears its pending acceleration.
func IntegrateBody(body *components.PhysicsData, timeSpeed float64) {
	body.Position, body.Velocity = gamemath.Integrate(
		body.Position, body.Velocity, body.Acceleration,
		timeSpeed, cfg.Physics.Friction,
	)
	body.Acceleration = gamemath.Vector{}
}
