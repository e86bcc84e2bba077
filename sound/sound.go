package sound

import (
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/jjanrb/chrono-fling/assets"
	cfg "github.com/jjanrb/chrono-fling/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// Player plays sound cues through ebiten's audio context. It satisfies
// systems.Sounder.
type Player struct {
	loader *assets.AudioLoader
	volume float64
	muted  bool
	failed map[cfg.SoundID]bool
}

// NewPlayer creates a player reading sfx from cfg.Audio.AssetDir.
func NewPlayer() *Player {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return &Player{
		loader: assets.NewAudioLoader(globalAudioContext, os.DirFS(cfg.Audio.AssetDir)),
		volume: cfg.Audio.DefaultSFXVol,
		failed: make(map[cfg.SoundID]bool),
	}
}

// Preload decodes every configured cue so the first play does not stall.
func (p *Player) Preload() {
	for id, path := range cfg.Sound.SFXPaths {
		if err := p.loader.PreloadSFX(path); err != nil {
			p.warn(id, err)
		}
	}
}

// SetVolume sets the sfx volume, clamped to [0, 1]. 0 mutes.
func (p *Player) SetVolume(volume float64) {
	p.volume = min(max(volume, 0), 1)
}

func (p *Player) Volume() float64 {
	return p.volume
}

func (p *Player) ToggleMute() {
	p.muted = !p.muted
}

func (p *Player) Play(id cfg.SoundID) {
	if p.muted || p.volume <= 0 || p.failed[id] {
		return
	}

	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}

	player, err := p.loader.LoadSFX(path)
	if err != nil {
		p.warn(id, err)
		return
	}

	volume := p.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// warn logs a broken cue once and skips it from then on.
func (p *Player) warn(id cfg.SoundID, err error) {
	if p.failed[id] {
		return
	}
	p.failed[id] = true
	log.Printf("Warning: Could not load sound %d: %v", id, err)
}
