package systems

import (
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateTimeScale eases the current scale toward its target and derives the
// effective time speed for this tick from the real elapsed time dt.
func UpdateTimeScale(w donburi.World, dt float64) {
	t := timeData(w)
	t.Current = gamemath.DecayTo(t.Current, t.Target, cfg.Time.EaseFactor)
	t.Delta = dt
	t.Speed = t.Current * dt
}

// RequestTimeScale sets a new target. With snap the current scale also
// jumps part of the way there so the change is felt on the next tick.
func RequestTimeScale(w donburi.World, target float64, snap bool) {
	t := timeData(w)
	t.Target = target
	if snap {
		t.Current = gamemath.Lerp(t.Current, target, cfg.Time.SnapFraction)
	}
}

// FreezeTime stops simulated time until a new target is requested.
func FreezeTime(w donburi.World) {
	t := timeData(w)
	t.Target = 0
	t.Current = 0
}

func timeData(w donburi.World) *components.TimeData {
	entry, ok := components.Time.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Time))
		components.Time.SetValue(entry, components.TimeData{Current: 1, Target: 1})
	}
	return components.Time.Get(entry)
}
