package game

import (
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/spin-disc/internal/config"
	"github.com/iburimskiy/spin-disc/internal/particles"
	"github.com/iburimskiy/spin-disc/internal/spin"
	"github.com/iburimskiy/spin-disc/internal/tone"
)

// Game wires the wheel, the particle system and the tone player into the
// ebiten run loop. All state is owned by the update goroutine; the tone
// generator does its own locking against the speaker.
type Game struct {
	wheel     *spin.Wheel
	particles *particles.System
	tone      *tone.Player
	noise     *perlin.Perlin

	time       float64
	colorPhase float64
	tickAccum  time.Duration

	discHovered bool

	// input edge detection
	prevKey map[ebiten.Key]bool
}

func New() *Game {
	g := &Game{
		wheel:     spin.NewWheel(config.TPS),
		particles: particles.NewSystem(config.MaxParticles, time.Now().UnixNano()),
		tone:      tone.NewPlayer(),
		noise:     perlin.NewPerlin(2, 2, 3, time.Now().UnixNano()),
		prevKey:   map[ebiten.Key]bool{},
	}

	// The tone retargets on every rotation update, not on its own clock.
	g.wheel.OnUpdate(func(_, speed float64) {
		g.tone.SetSpeed(speed)
	})
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	dx := float64(mouseX) - config.WindowWidth/2
	dy := float64(mouseY) - config.WindowHeight/2
	g.discHovered = dx*dx+dy*dy <= config.DiscRadius*config.DiscRadius

	if g.discHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.wheel.Spin()
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.wheel.Step()

	g.time += 1.0 / config.TPS
	g.colorPhase += config.ColorShiftSpeed

	// A fixed 50ms tick drives emission; the accumulator decouples it from
	// the frame rate. Once the gate closes, pending ticks and the particle
	// list are both dropped.
	speed := g.wheel.Speed()
	if g.wheel.Spinning() && speed > config.EmitSpeed {
		g.tickAccum += time.Second / config.TPS
		for g.tickAccum >= config.EmitInterval {
			g.tickAccum -= config.EmitInterval
			g.particles.Emit(speed)
		}
	} else {
		g.tickAccum = 0
		g.particles.Clear()
	}

	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Shutdown releases the tone source. Safe to call more than once.
func (g *Game) Shutdown() {
	g.tone.Close()
}
