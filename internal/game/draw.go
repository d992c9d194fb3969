package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spin-disc/internal/config"
	"github.com/iburimskiy/spin-disc/internal/particles"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawDisc(screen)
	g.drawParticles(screen)

	status := "Click the disc to spin - Esc/Q: Quit"
	if g.wheel.Spinning() {
		status = fmt.Sprintf("speed %.1f  particles %d", g.wheel.Speed(), g.particles.Len())
	}
	if g.tone.Silent() {
		status += "  (no audio)"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Slow perlin shimmer in 4px bands.
	for y := 0; y < config.WindowHeight; y += 4 {
		n := g.noise.Noise2D(g.time*0.15, float64(y)/config.WindowHeight*2)
		r := uint8(12 + 18*(n+1))
		gc := uint8(14 + 12*(n+1))
		b := uint8(24 + 22*(n+1))
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 4, color.RGBA{R: r, G: gc, B: b, A: 255}, false)
	}
}

func (g *Game) drawDisc(screen *ebiten.Image) {
	cx := float32(config.WindowWidth) / 2
	cy := float32(config.WindowHeight) / 2

	base := color.RGBA{R: 40, G: 48, B: 72, A: 255}
	if g.discHovered {
		base = color.RGBA{R: 52, G: 62, B: 92, A: 255}
	}
	vector.DrawFilledCircle(screen, cx, cy, config.DiscRadius, base, true)
	vector.StrokeCircle(screen, cx, cy, config.DiscRadius, 3, color.RGBA{R: 150, G: 170, B: 200, A: 255}, true)

	// Spoke markers make the eased rotation visible.
	angle := g.wheel.Angle() * math.Pi / 180
	for i := 0; i < 6; i++ {
		a := angle + float64(i)*math.Pi/3
		x := float64(cx) + math.Cos(a)*config.DiscRadius*0.72
		y := float64(cy) + math.Sin(a)*config.DiscRadius*0.72

		hue := (g.colorPhase + float64(i)/6) * 360
		r, gc, b := hsvToRgb(hue, 0.7, 0.9)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 10, color.RGBA{R: r, G: gc, B: b, A: 255}, true)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight) / 2
	now := time.Now()

	for _, p := range g.particles.All() {
		u := p.Progress(now)
		if u >= 1 {
			// Visual transition finished; truncation reclaims the entry.
			continue
		}
		alpha := clamp01(1 - u)
		hue := (g.colorPhase + float64(p.ID%12)/12) * 360

		switch p.Kind {
		case particles.Swirl:
			r, gc, b := hsvToRgb(hue, 0.6, 0.95)
			col := color.RGBA{R: r, G: gc, B: b, A: uint8(200 * alpha)}
			path := p.SpiralPath()
			last := int(u * (particles.SpiralPoints - 1))
			for i := 0; i < last; i++ {
				vector.StrokeLine(screen,
					float32(cx+path[i][0]), float32(cy+path[i][1]),
					float32(cx+path[i+1][0]), float32(cy+path[i+1][1]),
					2, col, true)
			}
		case particles.Stardust:
			r, gc, b := hsvToRgb(hue, 0.5, 1.0)
			col := color.RGBA{R: r, G: gc, B: b, A: uint8(255 * alpha)}
			x, y := p.At(u)
			vector.DrawFilledCircle(screen, float32(cx+x), float32(cy+y), float32(2+2*alpha), col, true)
		default:
			r, gc, b := hsvToRgb(hue, 0.85, 1.0)
			col := color.RGBA{R: r, G: gc, B: b, A: uint8(255 * alpha)}
			x, y := p.At(u)
			vector.DrawFilledCircle(screen, float32(cx+x), float32(cy+y), float32(3+3*alpha), col, true)
		}
	}
}
