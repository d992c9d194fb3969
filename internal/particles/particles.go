package particles

import (
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/spin-disc/internal/config"
)

// Kind selects a particle's trajectory and duration range.
type Kind uint8

const (
	Sparkle Kind = iota
	Swirl
	Stardust
)

func (k Kind) String() string {
	switch k {
	case Sparkle:
		return "sparkle"
	case Swirl:
		return "swirl"
	case Stardust:
		return "stardust"
	}
	return "unknown"
}

// Particle is immutable once spawned. Everything the renderer needs to
// replay its animation is captured at spawn time, so the emitter never
// tracks per-particle completion; a particle may be truncated from the
// model before its visual transition finishes.
type Particle struct {
	ID       uint64
	Angle    float64 // radians in [0, 2π)
	Kind     Kind
	Distance float64 // sparkle travel in px; stardust scales it 1.5x
	Duration time.Duration
	Born     time.Time
}

// System spawns and retires particles around the disc. Oldest entries are
// dropped first once the cap is exceeded.
type System struct {
	max       int
	particles []Particle
	nextID    uint64
	rand      *rand.Rand
	now       func() time.Time
}

// NewSystem creates a particle system holding at most max particles.
func NewSystem(max int, seed int64) *System {
	if max <= 0 {
		max = config.MaxParticles
	}
	return &System{
		max:  max,
		rand: rand.New(rand.NewSource(seed)),
		now:  time.Now,
	}
}

// Emit runs one 50ms emission tick at the given speed. It spawns
// min(floor(speed/5), 10) particles, nothing at speed <= 5, then truncates
// to the newest max entries. Returns the number spawned.
func (s *System) Emit(speed float64) int {
	if speed <= config.EmitSpeed {
		return 0
	}
	count := int(speed / config.EmitSpeed)
	if count > config.MaxEmitPerTick {
		count = config.MaxEmitPerTick
	}
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, s.spawn(i, count, speed))
	}
	if len(s.particles) > s.max {
		s.particles = s.particles[len(s.particles)-s.max:]
	}
	return count
}

// spawn draws one particle for the given slot: 70% sparkle, else a 50%
// chance of swirl when speed is high enough, else stardust. Swirl angles
// are spaced evenly across the tick's slots; the others are random.
func (s *System) spawn(slot, count int, speed float64) Particle {
	p := Particle{
		ID:       s.nextID,
		Distance: 100 + math.Min(speed*3, 200),
		Born:     s.now(),
	}
	s.nextID++

	switch {
	case s.rand.Float64() < 0.7:
		p.Kind = Sparkle
		p.Angle = s.rand.Float64() * 2 * math.Pi
		p.Duration = s.duration(1000, 1500)
	case speed > config.SwirlSpeed && s.rand.Float64() < 0.5:
		p.Kind = Swirl
		p.Angle = 2 * math.Pi * float64(slot) / float64(count)
		p.Duration = s.duration(2000, 3000)
	default:
		p.Kind = Stardust
		p.Angle = s.rand.Float64() * 2 * math.Pi
		p.Duration = s.duration(1500, 2250)
	}
	return p
}

func (s *System) duration(minMs, maxMs int) time.Duration {
	return time.Duration(minMs+s.rand.Intn(maxMs-minMs)) * time.Millisecond
}

// Clear drops every particle. Called when the disc stops spinning.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Len returns the current particle count.
func (s *System) Len() int { return len(s.particles) }

// All returns the live particles, oldest first. The slice is shared; treat
// it as read-only.
func (s *System) All() []Particle { return s.particles }
