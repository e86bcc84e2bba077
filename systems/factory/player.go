package factory

import (
	"github.com/jjanrb/chrono-fling/archetypes"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player in the tutorial state.
func CreatePlayer(w donburi.World, position gamemath.Vector) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Physics.SetValue(player, components.NewPhysics(position, cfg.Player.BaseRadius))
	components.Player.SetValue(player, components.PlayerData{
		State:       cfg.StateTutorial,
		FlingCharge: cfg.Player.StartingCharge,
		Indicators:  make([]components.IndicatorSlot, 0, cfg.Indicator.Count+1),
	})
	components.Visual.SetValue(player, components.VisualData{
		ScaleX:     1,
		ScaleY:     1,
		PulseValue: 1,
	})

	return player
}
