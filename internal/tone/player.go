package tone

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/spin-disc/internal/config"
)

// Player owns the speaker and a single persistent tone source. The source
// is created once at widget mount, starts silent, and runs until Close.
// If no audio device is available the player is inert: every method is a
// no-op and the widget stays usable without sound.
type Player struct {
	gen  *Generator
	ctrl *beep.Ctrl

	mu     sync.Mutex
	silent bool
	closed bool
}

// NewPlayer initializes the speaker and starts the tone at gain 0.
func NewPlayer() *Player {
	sr := beep.SampleRate(config.SampleRate)
	p := &Player{gen: NewGenerator(sr, config.MaxVolume)}

	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		p.silent = true
		return p
	}

	p.ctrl = &beep.Ctrl{Streamer: p.gen}
	speaker.Play(p.ctrl)
	return p
}

// SetSpeed feeds the current angular speed to the tone source.
func (p *Player) SetSpeed(speed float64) {
	if p.silent {
		return
	}
	p.gen.SetSpeed(speed)
}

// Silent reports whether the player runs without an audio device.
func (p *Player) Silent() bool { return p.silent }

// Close stops the tone source. Safe to call more than once; only the first
// call touches the speaker. beep exposes no speaker close, so pausing the
// ctrl and clearing the queue is the full teardown.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.silent || p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()

	speaker.Clear()
}
