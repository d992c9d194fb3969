package config

import "time"

const (
	WindowWidth  = 640
	WindowHeight = 640

	TPS = 60

	// Disc geometry
	DiscRadius = 160.0

	// Spring easing toward the target rotation, stiffness 100 / damping 30,
	// expressed as harmonica's angular frequency and damping ratio.
	SpringFrequency = 10.0
	SpringDamping   = 1.5

	// One click adds 5-15 full turns to the rotation target.
	MinTurns   = 5.0
	TurnSpread = 10.0

	// Speed thresholds (speed = |angular velocity| / 100)
	SpinningSpeed = 1.0
	EmitSpeed     = 5.0
	SwirlSpeed    = 20.0

	// Particle emission
	EmitInterval   = 50 * time.Millisecond
	MaxParticles   = 50
	MaxEmitPerTick = 10

	// Tone synthesis
	SampleRate    = 44100
	MaxVolume     = 0.3
	BaseFrequency = 200.0
	FreqPerSpeed  = 2.0
	GlideSeconds  = 0.01

	ColorShiftSpeed = 0.01
)
