package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundSelect
	SoundSwipe
	SoundBack
	// Gameplay sounds
	SoundAim
	SoundFling
	SoundOrbHit
	SoundSpikeHit
	SoundDeath
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	VolumeStep    float64 // change per volume key press
	AssetDir      string // directory holding the sfx files
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		VolumeStep:    0.1,
		AssetDir:      "assets/audio",
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundSelect:   "sfx/select.wav",
			SoundSwipe:    "sfx/swipe.wav",
			SoundBack:     "sfx/back.wav",
			SoundAim:      "sfx/aim.wav",
			SoundFling:    "sfx/fling.wav",
			SoundOrbHit:   "sfx/orb_hit.wav",
			SoundSpikeHit: "sfx/spike_hit.wav",
			SoundDeath:    "sfx/death.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundBack:  0.7,
			SoundDeath: 1.5,
		},
	}
}
