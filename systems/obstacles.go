package systems

import (
	"log"
	"math"

	"github.com/golang/geo/r2"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

func obstacleType(kind cfg.ObstacleKind) cfg.ObstacleTypeConfig {
	if kind == cfg.KindSpike {
		return cfg.Obstacle.Spike
	}
	return cfg.Obstacle.Orb
}

// Respawn places an obstacle at a uniform random point of bounds with a
// uniform random scale. Spikes also get a random rotation.
func Respawn(body *components.PhysicsData, obstacle *components.ObstacleData, bounds r2.Rect, rng gamemath.Float64Source) {
	t := obstacleType(obstacle.Kind)
	body.Position = gamemath.RandomPointIn(bounds, rng)
	body.SetScale(gamemath.RandomRange(t.ScaleMin, t.ScaleMax, rng))
	if obstacle.Kind == cfg.KindSpike {
		obstacle.Rotation = gamemath.RandomRange(0, 2*math.Pi, rng)
	}
}

// DestroyAndRespawn is the collision outcome for an obstacle: its cue plays
// and it reappears in the camera's next bounds.
func DestroyAndRespawn(w donburi.World, d *Deps, e *donburi.Entry) {
	obstacle := components.Obstacle.Get(e)
	switch obstacle.Kind {
	case cfg.KindOrb:
		PlaySFX(w, cfg.SoundOrbHit)
	case cfg.KindSpike:
		PlaySFX(w, cfg.SoundSpikeHit)
	}
	Respawn(components.Physics.Get(e), obstacle, cameraData(w).NextBounds, d.Rand)
}

// UpdateObstacles recycles obstacles that fell behind the wave into the
// bounds the camera will reach one screen later.
func UpdateObstacles(w donburi.World, d *Deps) {
	limit := waveData(w).Y + cfg.Obstacle.RecycleMargin
	next := cameraData(w).NextBounds

	eachObstacle(w, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		if body.Position.Y > limit {
			Respawn(body, components.Obstacle.Get(e), next, d.Rand)
		}
	})
}

// ResetObjects seeds every obstacle inside the current camera bounds with
// its position outside the player's personal space. After MaxAttempts failed
// draws an obstacle falls back to the next bounds, which ends the retries but
// only clears personal space when that circle is smaller than one screen.
func ResetObjects(w donburi.World, d *Deps) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Physics.Get(playerEntry)
	personal := player.ColliderRadius() * cfg.Player.PersonalSpace
	cam := cameraData(w)

	eachObstacle(w, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		obstacle := components.Obstacle.Get(e)
		if !placeClear(body, obstacle, cam.Bounds, player.Position, personal, d.Rand) {
			log.Printf("Warning: no free spot for %s after %d attempts, using next bounds", obstacle.Kind, cfg.Spawn.MaxAttempts)
			Respawn(body, obstacle, cam.NextBounds, d.Rand)
			if gamemath.PointInCircle(player.Position, personal, body.Position) {
				log.Printf("Warning: fallback %s at (%.0f, %.0f) is inside the player's personal space", obstacle.Kind, body.Position.X, body.Position.Y)
			}
		}
	})
}

func placeClear(body *components.PhysicsData, obstacle *components.ObstacleData, bounds r2.Rect, center gamemath.Vector, radius float64, rng gamemath.Float64Source) bool {
	for attempt := 0; attempt < cfg.Spawn.MaxAttempts; attempt++ {
		Respawn(body, obstacle, bounds, rng)
		if !gamemath.PointInCircle(center, radius, body.Position) {
			return true
		}
	}
	return false
}

func eachObstacle(w donburi.World, fn func(e *donburi.Entry)) {
	tags.Orb.Each(w, fn)
	tags.Spike.Each(w, fn)
}
