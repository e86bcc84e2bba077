package config

// PlayerState is the player's finite-state machine state
type PlayerState int

const (
	StateTutorial PlayerState = iota
	StateIdle
	StateAiming
	StateDead
)

var stateNames = map[PlayerState]string{
	StateTutorial: "tutorial",
	StateIdle:     "idle",
	StateAiming:   "aiming",
	StateDead:     "dead",
}

func (s PlayerState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ObstacleKind distinguishes the obstacle variants
type ObstacleKind int

const (
	KindOrb ObstacleKind = iota
	KindSpike
)

func (k ObstacleKind) String() string {
	switch k {
	case KindOrb:
		return "orb"
	case KindSpike:
		return "spike"
	}
	return "unknown"
}
