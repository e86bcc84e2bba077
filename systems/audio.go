package systems

import (
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/yohamta/donburi"
)

// Sounder plays sound cues. Fire-and-forget.
type Sounder interface {
	Play(sound cfg.SoundID)
}

// NopSounder discards every cue.
type NopSounder struct{}

func (NopSounder) Play(cfg.SoundID) {}

// PlaySFX queues a sound effect to be played at the end of the tick
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// FlushAudio hands every queued cue to s in the order it was raised.
func FlushAudio(w donburi.World, s Sounder) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		s.Play(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// GetOrCreateAudio returns the singleton Audio component, creating it if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
