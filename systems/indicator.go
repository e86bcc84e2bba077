package systems

import (
	"math"

	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
)

// LayoutIndicators positions the aim chain for a fling force. Slots run
// from the player toward force*Spread at fractions i/(N+2), i = 1..N+1;
// the middle slot (fraction 1/2) carries the charge count. dst is reused.
func LayoutIndicators(force gamemath.Vector, invalid bool, dst []components.IndicatorSlot) []components.IndicatorSlot {
	n := cfg.Indicator.Count
	end := force.MulScalar(cfg.Indicator.Spread)
	scaleCap := force.Magnitude() / cfg.Indicator.ScaleCapDivisor

	dst = dst[:0]
	for i := 1; i <= n+1; i++ {
		t := float64(i) / float64(n+2)

		alpha := gamemath.Lerp(cfg.Indicator.AlphaMax, cfg.Indicator.AlphaMin, t)
		if invalid {
			alpha *= cfg.Indicator.InvalidAlpha
		}

		dst = append(dst, components.IndicatorSlot{
			Offset: gamemath.Lerp2D(gamemath.Vector{}, end, t),
			Scale:  math.Min(gamemath.Lerp(cfg.Indicator.ScaleMax, cfg.Indicator.ScaleMin, t), scaleCap),
			Alpha:  alpha,
			Count:  i == n/2+1,
		})
	}
	return dst
}

// AimTarget returns the player-local offset of the count slot.
func AimTarget(slots []components.IndicatorSlot) gamemath.Vector {
	for _, s := range slots {
		if s.Count {
			return s.Offset
		}
	}
	return gamemath.Vector{}
}
