package components

import (
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// InputData stores latched pointer samples in canvas space. The host writes
// them between ticks; systems only read them.
type InputData struct {
	Pointer gamemath.Vector
	Down    gamemath.Vector // latched at press
	Up      gamemath.Vector // latched at release
}

var Input = donburi.NewComponentType[InputData]()
