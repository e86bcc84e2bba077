package systems

import (
	"math"

	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// updateVisual derives orientation and squash/stretch from the velocity.
// None of it feeds back into the simulation.
func updateVisual(visual *components.VisualData, body *components.PhysicsData, dt float64) {
	speed := body.Velocity.Magnitude()
	stretch := 1 + math.Min(speed/cfg.SquashStretch.StretchSpeed, 1)*cfg.SquashStretch.MaxStretch

	pulse := 1.0
	if visual.Pulse != nil {
		current, finished := visual.Pulse.Update(float32(dt))
		pulse = float64(current)
		if finished {
			visual.Pulse = nil
			pulse = 1
		}
	}
	visual.PulseValue = pulse

	visual.ScaleX = pulse / stretch
	visual.ScaleY = pulse * stretch
	if speed > 0 {
		visual.Rotation = gamemath.Heading(body.Velocity) + math.Pi/2
	}
}

func startPulse(visual *components.VisualData) {
	visual.Pulse = gween.New(float32(cfg.SquashStretch.PulseScale), 1, cfg.SquashStretch.PulseDuration, ease.OutQuad)
}
