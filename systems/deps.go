package systems

import "github.com/jjanrb/chrono-fling/gamemath"

// Deps carries the collaborators systems need beyond the world itself.
type Deps struct {
	Rand  gamemath.Float64Source
	Store BestHeightStore
}
