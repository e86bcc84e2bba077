package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jjanrb/chrono-fling/gamemath"
)

// pointer merges the left mouse button and the first touch into one
// canvas-space pointer.
type pointer struct {
	position gamemath.Vector
	pressed  bool // went down this tick
	released bool // went up this tick

	touch    ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
}

func (p *pointer) update() {
	p.pressed, p.released = false, false

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if !p.touching && len(p.touchIDs) > 0 {
		p.touch = p.touchIDs[0]
		p.touching = true
		p.pressed = true
	}
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			x, y := inpututil.TouchPositionInPreviousTick(p.touch)
			p.position = gamemath.Vector{X: float64(x), Y: float64(y)}
			p.touching = false
			p.released = true
			return
		}
		x, y := ebiten.TouchPosition(p.touch)
		p.position = gamemath.Vector{X: float64(x), Y: float64(y)}
		return
	}

	x, y := ebiten.CursorPosition()
	p.position = gamemath.Vector{X: float64(x), Y: float64(y)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.released = true
	}
}

type action int

const (
	actionStart action = iota
	actionBack
	actionMute
	actionVolumeDown
	actionVolumeUp
)

var keyBindings = map[action][]ebiten.Key{
	actionStart:      {ebiten.KeySpace, ebiten.KeyEnter},
	actionBack:       {ebiten.KeyEscape, ebiten.KeyBackspace},
	actionMute:       {ebiten.KeyM},
	actionVolumeDown: {ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
	actionVolumeUp:   {ebiten.KeyEqual, ebiten.KeyNumpadAdd},
}

func justPressed(a action) bool {
	for _, key := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
