package systems

import (
	"math"

	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/yohamta/donburi"
)

// HeightFromY converts a world y coordinate to climbed meters.
func HeightFromY(y float64) int {
	return int(math.Ceil(y*cfg.Player.HeightScale)) + cfg.Player.HeightOffset
}

func recordDeath(w donburi.World, d *Deps, player *components.PlayerData, body *components.PhysicsData) {
	body.Velocity.X = 0

	height := HeightFromY(body.Position.Y)
	player.DeathHeight = height
	player.HasDied = true

	session := sessionData(w)
	if height > session.BestHeight {
		session.BestHeight = height
		if d != nil && d.Store != nil {
			d.Store.SaveBestHeight(height)
		}
	}
}

// TakeReturnToMenu reports a pending return-to-menu request exactly once.
func TakeReturnToMenu(w donburi.World) bool {
	session := sessionData(w)
	if !session.ReturnToMenu || session.MenuFired {
		return false
	}
	session.MenuFired = true
	return true
}
