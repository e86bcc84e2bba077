package systems

import (
	"strconv"

	"github.com/golang/geo/r2"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

// SpriteKind tells the renderer which shape to draw.
type SpriteKind int

const (
	SpriteWave SpriteKind = iota
	SpriteOrb
	SpriteSpike
	SpritePlayer
	SpriteIndicator
)

// Sprite is everything the renderer needs for one body, in world space.
type Sprite struct {
	Kind     SpriteKind
	Position gamemath.Vector
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Radius   float64
	Alpha    float64
	Invalid  bool
	Label    string  // charge count on the indicator count slot
	Rect     r2.Rect // wave only
}

// Draw emits sprites back to front: wave, orbs, spikes, player, indicator.
func Draw(w donburi.World, draw func(Sprite)) {
	if entry, ok := components.Wave.First(w); ok {
		wave := components.Wave.Get(entry)
		draw(Sprite{Kind: SpriteWave, Position: gamemath.Vector{Y: wave.Y}, Rect: wave.Rect, ScaleX: 1, ScaleY: 1, Alpha: 1})
	}

	tags.Orb.Each(w, func(e *donburi.Entry) {
		draw(obstacleSprite(SpriteOrb, e))
	})
	tags.Spike.Each(w, func(e *donburi.Entry) {
		draw(obstacleSprite(SpriteSpike, e))
	})

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	body := components.Physics.Get(playerEntry)
	visual := components.Visual.Get(playerEntry)
	draw(Sprite{
		Kind:     SpritePlayer,
		Position: body.Position,
		Rotation: visual.Rotation,
		ScaleX:   visual.ScaleX,
		ScaleY:   visual.ScaleY,
		Radius:   body.ColliderRadius(),
		Alpha:    1,
	})

	if !player.IndicatorVisible {
		return
	}
	for _, slot := range player.Indicators {
		s := Sprite{
			Kind:     SpriteIndicator,
			Position: body.Position.Add(slot.Offset),
			ScaleX:   slot.Scale,
			ScaleY:   slot.Scale,
			Radius:   cfg.Indicator.DotRadius * slot.Scale,
			Alpha:    slot.Alpha,
			Invalid:  player.InvalidFling,
		}
		if slot.Count {
			s.Label = strconv.Itoa(player.FlingCharge)
		}
		draw(s)
	}
}

func obstacleSprite(kind SpriteKind, e *donburi.Entry) Sprite {
	body := components.Physics.Get(e)
	return Sprite{
		Kind:     kind,
		Position: body.Position,
		Rotation: components.Obstacle.Get(e).Rotation,
		ScaleX:   body.Scale(),
		ScaleY:   body.Scale(),
		Radius:   body.ColliderRadius(),
		Alpha:    1,
	}
}
