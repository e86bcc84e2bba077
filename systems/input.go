package systems

import (
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// SetPointer latches the current pointer position (canvas space).
func SetPointer(w donburi.World, p gamemath.Vector) {
	inputData(w).Pointer = p
}

// LatchPress records the press position before OnAimStart runs.
func LatchPress(w donburi.World, p gamemath.Vector) {
	input := inputData(w)
	input.Down = p
	input.Pointer = p
}

// LatchRelease records the release position before OnFlingRelease runs.
func LatchRelease(w donburi.World, p gamemath.Vector) {
	input := inputData(w)
	input.Up = p
	input.Pointer = p
}
