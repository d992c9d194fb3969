package particles

import (
	"math"
	"time"
)

// SpiralPoints is the number of samples in a swirl's spiral path.
const SpiralPoints = 20

// Progress returns the particle's animation progress in [0, 1] at time t.
// All kinds use linear easing over their spawn-time duration.
func (p Particle) Progress(t time.Time) float64 {
	u := float64(t.Sub(p.Born)) / float64(p.Duration)
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// At returns the particle's offset from the disc center, in pixels, at
// progress u.
//
//   - sparkle: straight radial line out to Distance.
//   - stardust: radial line at 1.5x Distance while sweeping one full
//     rotation.
//   - swirl: linear interpolation along its spiral path.
func (p Particle) At(u float64) (x, y float64) {
	switch p.Kind {
	case Sparkle:
		d := p.Distance * u
		return math.Cos(p.Angle) * d, math.Sin(p.Angle) * d
	case Stardust:
		d := p.Distance * 1.5 * u
		a := p.Angle + 2*math.Pi*u
		return math.Cos(a) * d, math.Sin(a) * d
	case Swirl:
		f := u * (SpiralPoints - 1)
		i := int(f)
		if i >= SpiralPoints-1 {
			return p.spiralPoint(SpiralPoints - 1)
		}
		x0, y0 := p.spiralPoint(i)
		x1, y1 := p.spiralPoint(i + 1)
		frac := f - float64(i)
		return x0 + (x1-x0)*frac, y0 + (y1-y0)*frac
	}
	return 0, 0
}

// SpiralPath samples the swirl's full spiral, innermost point first.
func (p Particle) SpiralPath() [SpiralPoints][2]float64 {
	var pts [SpiralPoints][2]float64
	for i := range pts {
		pts[i][0], pts[i][1] = p.spiralPoint(i)
	}
	return pts
}

func (p Particle) spiralPoint(i int) (x, y float64) {
	a := p.Angle + float64(i)/3
	d := p.Distance * float64(i) / SpiralPoints
	return math.Cos(a) * d, math.Sin(a) * d
}
