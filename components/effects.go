package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// VisualData is presentation-only orientation and squash/stretch.
type VisualData struct {
	Rotation       float64
	ScaleX, ScaleY float64

	// Pulse scales the body up after a fling or an orb and eases back to 1.
	Pulse      *gween.Tween
	PulseValue float64
}

var Visual = donburi.NewComponentType[VisualData]()
