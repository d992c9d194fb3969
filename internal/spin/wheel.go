package spin

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/spin-disc/internal/config"
)

// UpdateFunc is invoked after every Step with the eased rotation (degrees)
// and the speed derived from its rate of change.
type UpdateFunc func(angle, speed float64)

// Wheel tracks a spring-eased rotation. Angles are in degrees and unbounded;
// one revolution is 360. The current angle relaxes toward the target each
// frame, and speed is rederived from the spring velocity, so a click-heavy
// spin decays asymptotically instead of hitting a hard stop.
type Wheel struct {
	spring harmonica.Spring

	target float64
	angle  float64
	vel    float64 // degrees per second

	speed    float64
	spinning bool

	onUpdate UpdateFunc
	randFn   func() float64
}

// NewWheel creates a wheel stepped at the given frame rate.
func NewWheel(fps int) *Wheel {
	return &Wheel{
		spring: harmonica.NewSpring(harmonica.FPS(fps), config.SpringFrequency, config.SpringDamping),
		randFn: rand.Float64,
	}
}

// Spin adds 5-15 random full turns to the rotation target and returns the
// increment in degrees.
func (w *Wheel) Spin() float64 {
	inc := 360 * (config.MinTurns + w.randFn()*config.TurnSpread)
	w.target += inc
	return inc
}

// Step advances the spring by one frame, rederives speed and the spinning
// flag, and fires the update callback.
func (w *Wheel) Step() {
	w.angle, w.vel = w.spring.Update(w.angle, w.vel, w.target)
	w.speed = math.Abs(w.vel) / 100
	w.spinning = w.speed > config.SpinningSpeed
	if w.onUpdate != nil {
		w.onUpdate(w.angle, w.speed)
	}
}

// OnUpdate registers the per-frame callback. Only one callback is kept.
func (w *Wheel) OnUpdate(fn UpdateFunc) { w.onUpdate = fn }

// Angle returns the eased rotation in degrees.
func (w *Wheel) Angle() float64 { return w.angle }

// Target returns the rotation the spring is relaxing toward.
func (w *Wheel) Target() float64 { return w.target }

// Speed returns the current angular speed (always >= 0).
func (w *Wheel) Speed() float64 { return w.speed }

// Spinning reports whether speed is above the spinning threshold.
func (w *Wheel) Spinning() bool { return w.spinning }
