package systems

import (
	"math"

	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

// handleObstacleCollisions applies every overlap of this tick, orbs first
// and then spikes, in population order.
func handleObstacleCollisions(w donburi.World, d *Deps, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	body := components.Physics.Get(playerEntry)
	visual := components.Visual.Get(playerEntry)

	tags.Orb.Each(w, func(e *donburi.Entry) {
		if !overlaps(body, components.Physics.Get(e)) {
			return
		}
		ReactToOrb(player, body)
		startPulse(visual)
		DestroyAndRespawn(w, d, e)
	})

	tags.Spike.Each(w, func(e *donburi.Entry) {
		if !overlaps(body, components.Physics.Get(e)) {
			return
		}
		ReactToSpike(player, body)
		DestroyAndRespawn(w, d, e)
	})
}

func overlaps(a, b *components.PhysicsData) bool {
	return gamemath.CirclesOverlap(a.Position, a.ColliderRadius(), b.Position, b.ColliderRadius())
}

// ReactToOrb bounces the player upward, mirrors its horizontal motion and
// grants one charge.
func ReactToOrb(player *components.PlayerData, body *components.PhysicsData) {
	body.Velocity = gamemath.Vector{
		X: -body.Velocity.X,
		Y: -math.Abs(body.Velocity.Y) * cfg.Player.OrbBounceY,
	}
	player.FlingCharge++
}

// ReactToSpike knocks the player back and takes one charge, never below 0.
func ReactToSpike(player *components.PlayerData, body *components.PhysicsData) {
	body.Velocity = body.Velocity.MulScalar(cfg.Player.SpikeKnockback)
	player.FlingCharge = max(player.FlingCharge-1, 0)
}
