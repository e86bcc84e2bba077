package factory

import (
	"github.com/jjanrb/chrono-fling/archetypes"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// CreateSession creates the singleton holding the clock, latched input,
// the sound queue and the best height loaded at session start.
func CreateSession(w donburi.World, bestHeight int) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{BestHeight: bestHeight})
	// The tutorial starts with time frozen.
	components.Time.SetValue(session, components.TimeData{})
	components.Input.SetValue(session, components.InputData{})
	components.Audio.SetValue(session, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return session
}

// CreateLevel populates w with a fresh session: player at the origin,
// camera on the player, wave below and the obstacle populations.
func CreateLevel(w donburi.World, bestHeight int) {
	origin := gamemath.Vector{}
	CreateSession(w, bestHeight)
	CreateCamera(w, origin)
	CreatePlayer(w, origin)
	CreateWave(w, origin.Y+cfg.Wave.StartOffset)
	CreateObstacles(w)
}
