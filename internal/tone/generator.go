package tone

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/spin-disc/internal/config"
)

// Generator streams a continuous sine wave whose frequency and gain glide
// exponentially toward their targets instead of stepping. The glide runs
// per sample with a fixed time constant, so retargeting is click-free.
//
// Stream is called from the speaker goroutine while SetSpeed is called from
// the update loop, hence the mutex.
type Generator struct {
	sr beep.SampleRate

	mu         sync.Mutex
	freq       float64
	gain       float64
	targetFreq float64
	targetGain float64
	maxVolume  float64

	phase float64
	glide float64 // per-sample approach coefficient
}

// NewGenerator creates a silent generator at the base frequency.
func NewGenerator(sr beep.SampleRate, maxVolume float64) *Generator {
	return &Generator{
		sr:         sr,
		freq:       config.BaseFrequency,
		targetFreq: config.BaseFrequency,
		maxVolume:  maxVolume,
		glide:      1 - math.Exp(-1/(config.GlideSeconds*float64(sr))),
	}
}

// SetSpeed retargets pitch and gain from the current angular speed:
// frequency 200 + speed*2, gain min(speed/100, 1) * maxVolume. Both are
// monotonic in speed and gain never exceeds maxVolume.
func (g *Generator) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	g.mu.Lock()
	g.targetGain = math.Min(speed/100, 1) * g.maxVolume
	g.targetFreq = config.BaseFrequency + speed*config.FreqPerSpeed
	g.mu.Unlock()
}

// Targets returns the current glide targets.
func (g *Generator) Targets() (freq, gain float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.targetFreq, g.targetGain
}

// Gain returns the glided gain as of the last streamed sample.
func (g *Generator) Gain() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gain
}

func (g *Generator) Stream(samples [][2]float64) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range samples {
		g.freq += (g.targetFreq - g.freq) * g.glide
		g.gain += (g.targetGain - g.gain) * g.glide

		v := math.Sin(2*math.Pi*g.phase) * g.gain
		samples[i][0] = v
		samples[i][1] = v

		g.phase += g.freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}
	}
	return len(samples), true
}

func (g *Generator) Err() error { return nil }
