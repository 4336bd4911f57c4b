package stage

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the audio context rate sounds are decoded at.
const SampleRate = 44100

// Mixer plays one-shot sounds from an asset set.
type Mixer struct {
	ctx     *audio.Context
	assets  *Assets
	volume  float64
	playing []*audio.Player
}

// NewMixer creates a mixer. A nil ctx yields a silent mixer, which is what
// tests and headless runs use.
func NewMixer(ctx *audio.Context, assets *Assets, volume float64) *Mixer {
	return &Mixer{ctx: ctx, assets: assets, volume: volume}
}

// Play starts the named sound and reports whether it was found.
func (m *Mixer) Play(name string) bool {
	if m == nil || m.assets == nil {
		return false
	}
	pcm, ok := m.assets.Sound(name)
	if !ok {
		return false
	}
	m.prune()
	if m.ctx == nil {
		return true
	}
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(m.volume)
	p.Play()
	m.playing = append(m.playing, p)
	return true
}

// prune closes players that have finished.
func (m *Mixer) prune() {
	kept := m.playing[:0]
	for _, p := range m.playing {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(kept); i < len(m.playing); i++ {
		m.playing[i] = nil
	}
	m.playing = kept
}
