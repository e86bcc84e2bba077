package factory

import (
	"github.com/jjanrb/chrono-fling/archetypes"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// CreateOrb spawns an orb at position. Orbs are placed for real by
// systems.ResetObjects.
func CreateOrb(w donburi.World, position gamemath.Vector) *donburi.Entry {
	orb := archetypes.Orb.Spawn(w)
	components.Physics.SetValue(orb, components.NewPhysics(position, cfg.Obstacle.Orb.BaseRadius))
	components.Obstacle.SetValue(orb, components.ObstacleData{Kind: cfg.KindOrb})
	return orb
}

// CreateSpike spawns a spike at position.
func CreateSpike(w donburi.World, position gamemath.Vector) *donburi.Entry {
	spike := archetypes.Spike.Spawn(w)
	components.Physics.SetValue(spike, components.NewPhysics(position, cfg.Obstacle.Spike.BaseRadius))
	components.Obstacle.SetValue(spike, components.ObstacleData{Kind: cfg.KindSpike})
	return spike
}

// CreateObstacles spawns the configured orb and spike populations.
func CreateObstacles(w donburi.World) {
	for i := 0; i < cfg.Spawn.OrbCount; i++ {
		CreateOrb(w, gamemath.Vector{})
	}
	for i := 0; i < cfg.Spawn.SpikeCount; i++ {
		CreateSpike(w, gamemath.Vector{})
	}
}
