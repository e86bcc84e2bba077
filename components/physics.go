package components

import (
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is an integrable body. The collider radius is derived from
// BaseRadius and the scale and is only recomputed through SetScale.
type PhysicsData struct {
	Position     gamemath.Vector
	Velocity     gamemath.Vector
	Acceleration gamemath.Vector // pending, cleared after every integration step
	BaseRadius   float64

	scale  float64
	radius float64
}

// NewPhysics returns a body at rest with scale 1.
func NewPhysics(position gamemath.Vector, baseRadius float64) PhysicsData {
	return PhysicsData{
		Position:   position,
		BaseRadius: baseRadius,
		scale:      1,
		radius:     baseRadius,
	}
}

func (p *PhysicsData) Scale() float64 {
	return p.scale
}

// SetScale updates the scale and the collider radius derived from it.
func (p *PhysicsData) SetScale(scale float64) {
	p.scale = scale
	p.radius = p.BaseRadius * scale
}

func (p *PhysicsData) ColliderRadius() float64 {
	return p.radius
}

// ApplyForce accumulates an acceleration for the next integration step.
func (p *PhysicsData) ApplyForce(force gamemath.Vector) {
	p.Acceleration = p.Acceleration.Add(force)
}

var Physics = donburi.NewComponentType[PhysicsData]()
