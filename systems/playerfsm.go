package systems

import (
	cfg "github.com/jjanrb/chrono-fling/config"
)

// Event is an input to the player state machine.
type Event int

const (
	EventBegin          Event = iota // host leaves the tutorial
	EventAimStart                    // pointer pressed
	EventFling                       // pointer released with a valid fling
	EventFlingCancelled              // pointer released below threshold or without charge
	EventWaveHit                     // player touched the wave
	EventWaveOvertook                // wave covered the whole screen after death
)

// EffectKind identifies a side effect requested by a transition.
type EffectKind int

const (
	EffectSound EffectKind = iota
	EffectTimeScale
	EffectIndicator
	EffectRecordDeath
	EffectReturnToMenu
)

// Effect is applied by the player system after a transition.
type Effect struct {
	Kind      EffectKind
	Sound     cfg.SoundID
	TimeScale float64
	Snap      bool
	Visible   bool
}

func soundEffect(id cfg.SoundID) Effect {
	return Effect{Kind: EffectSound, Sound: id}
}

func timeScaleEffect(target float64, snap bool) Effect {
	return Effect{Kind: EffectTimeScale, TimeScale: target, Snap: snap}
}

func indicatorEffect(visible bool) Effect {
	return Effect{Kind: EffectIndicator, Visible: visible}
}

// Transition returns the state that follows from after ev together with the
// effects to apply. ok is false when ev is not legal in from; the caller must
// then leave the player untouched.
func Transition(from cfg.PlayerState, ev Event) (to cfg.PlayerState, effects []Effect, ok bool) {
	switch ev {
	case EventBegin:
		if from != cfg.StateTutorial {
			return from, nil, false
		}
		return cfg.StateIdle, []Effect{
			soundEffect(cfg.SoundSelect),
			timeScaleEffect(1, false),
		}, true

	case EventAimStart:
		if from == cfg.StateDead {
			return from, nil, false
		}
		return cfg.StateAiming, []Effect{
			soundEffect(cfg.SoundAim),
			timeScaleEffect(cfg.Time.AimScale, false),
			indicatorEffect(true),
		}, true

	case EventFling, EventFlingCancelled:
		if from != cfg.StateAiming {
			return from, nil, false
		}
		sound := cfg.SoundFling
		if ev == EventFlingCancelled {
			sound = cfg.SoundBack
		}
		return cfg.StateIdle, []Effect{
			indicatorEffect(false),
			timeScaleEffect(1, true),
			soundEffect(sound),
		}, true

	case EventWaveHit:
		if from != cfg.StateIdle && from != cfg.StateAiming {
			return from, nil, false
		}
		effects := make([]Effect, 0, 4)
		if from == cfg.StateAiming {
			effects = append(effects, indicatorEffect(false), timeScaleEffect(1, false))
		}
		effects = append(effects,
			soundEffect(cfg.SoundDeath),
			Effect{Kind: EffectRecordDeath},
		)
		return cfg.StateDead, effects, true

	case EventWaveOvertook:
		if from != cfg.StateDead {
			return from, nil, false
		}
		return cfg.StateDead, []Effect{{Kind: EffectReturnToMenu}}, true
	}
	return from, nil, false
}
