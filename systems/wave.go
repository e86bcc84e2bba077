package systems

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

// UpdateWave raises the wave. Outside of aiming it is never allowed to lag
// more than CatchUpMargin below the visible bottom.
func UpdateWave(w donburi.World) {
	wave := waveData(w)
	wave.Y -= cfg.Wave.Speed * timeData(w).Speed

	aiming := false
	if playerEntry, ok := tags.Player.First(w); ok {
		aiming = components.Player.Get(playerEntry).State == cfg.StateAiming
	}
	if !aiming {
		wave.Y = math.Min(wave.Y, cameraData(w).Bounds.Y.Hi+cfg.Wave.CatchUpMargin)
	}
	wave.Rect = WaveRect(wave.Y)
}

// WaveRect is the hazard rectangle whose top edge sits at y.
func WaveRect(y float64) r2.Rect {
	half := cfg.Wave.Size / 2
	return r2.Rect{
		X: r1.Interval{Lo: -half, Hi: half},
		Y: r1.Interval{Lo: y, Hi: y + cfg.Wave.Size},
	}
}

// WaveContains reports whether p is inside the wave, edges included.
func WaveContains(wave *components.WaveData, p gamemath.Vector) bool {
	return wave.Rect.ContainsPoint(gamemath.ToPoint(p))
}

func waveData(w donburi.World) *components.WaveData {
	entry, ok := components.Wave.First(w)
	if !ok {
		entry = w.Entry(w.Create(tags.Wave, components.Wave))
		components.Wave.SetValue(entry, components.WaveData{Y: math.Inf(1), Rect: r2.EmptyRect()})
	}
	return components.Wave.Get(entry)
}
