package factory

import (
	"github.com/jjanrb/chrono-fling/archetypes"
	"github.com/jjanrb/chrono-fling/components"
	"github.com/jjanrb/chrono-fling/systems"
	"github.com/yohamta/donburi"
)

// CreateWave creates the rising hazard with its top edge at y
func CreateWave(w donburi.World, y float64) *donburi.Entry {
	wave := archetypes.Wave.Spawn(w)
	components.Wave.SetValue(wave, components.WaveData{
		Y:    y,
		Rect: systems.WaveRect(y),
	})
	return wave
}
