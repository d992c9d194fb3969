package tone

import (
	"math"
	"testing"

	"github.com/faiface/beep"

	"github.com/iburimskiy/spin-disc/internal/config"
)

const testRate = beep.SampleRate(44100)

func stream(g *Generator, n int) [][2]float64 {
	buf := make([][2]float64, n)
	got, ok := g.Stream(buf)
	if got != n || !ok {
		panic("generator stopped streaming")
	}
	return buf
}

func TestTargetsFromSpeed(t *testing.T) {
	tests := []struct {
		speed    float64
		wantFreq float64
		wantGain float64
	}{
		{0, 200, 0},
		{25, 250, 0.25 * config.MaxVolume},
		{50, 300, 0.5 * config.MaxVolume},
		{100, 400, config.MaxVolume},
		{250, 700, config.MaxVolume}, // gain clamps, frequency does not
	}

	for _, tt := range tests {
		g := NewGenerator(testRate, config.MaxVolume)
		g.SetSpeed(tt.speed)
		freq, gain := g.Targets()
		if freq != tt.wantFreq {
			t.Errorf("SetSpeed(%v) target freq = %v, want %v", tt.speed, freq, tt.wantFreq)
		}
		if math.Abs(gain-tt.wantGain) > 1e-12 {
			t.Errorf("SetSpeed(%v) target gain = %v, want %v", tt.speed, gain, tt.wantGain)
		}
	}
}

func TestMappingMonotonic(t *testing.T) {
	g := NewGenerator(testRate, config.MaxVolume)
	prevFreq, prevGain := -1.0, -1.0
	for speed := 0.0; speed <= 200; speed += 0.5 {
		g.SetSpeed(speed)
		freq, gain := g.Targets()
		if freq < prevFreq || gain < prevGain {
			t.Fatalf("mapping not monotonic at speed %v: freq %v gain %v", speed, freq, gain)
		}
		prevFreq, prevGain = freq, gain
	}
}

func TestNegativeSpeedTreatedAsZero(t *testing.T) {
	g := NewGenerator(testRate, config.MaxVolume)
	g.SetSpeed(-10)
	freq, gain := g.Targets()
	if freq != config.BaseFrequency || gain != 0 {
		t.Errorf("SetSpeed(-10) targets = (%v, %v), want (%v, 0)", freq, gain, config.BaseFrequency)
	}
}

func TestStartsSilent(t *testing.T) {
	g := NewGenerator(testRate, config.MaxVolume)
	for _, s := range stream(g, 4410) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatal("generator produced sound before any SetSpeed")
		}
	}
}

func TestGainGlidesTowardTarget(t *testing.T) {
	g := NewGenerator(testRate, config.MaxVolume)
	g.SetSpeed(100)

	// A handful of samples in, gain is partway there: a glide, not a step.
	stream(g, 100)
	mid := g.Gain()
	if mid <= 0 || mid >= config.MaxVolume {
		t.Errorf("gain after 100 samples = %v, want strictly inside (0, %v)", mid, config.MaxVolume)
	}

	// 0.1s is ten time constants; the glide has converged.
	stream(g, 4410)
	if got := g.Gain(); math.Abs(got-config.MaxVolume) > 1e-3 {
		t.Errorf("gain after 0.1s = %v, want ~%v", got, config.MaxVolume)
	}
}

func TestAmplitudeNeverExceedsMaxVolume(t *testing.T) {
	g := NewGenerator(testRate, config.MaxVolume)
	g.SetSpeed(10000)
	for _, s := range stream(g, 44100) {
		if math.Abs(s[0]) > config.MaxVolume || math.Abs(s[1]) > config.MaxVolume {
			t.Fatalf("sample %v exceeds max volume %v", s, config.MaxVolume)
		}
	}
}

func TestStreamProducesSine(t *testing.T) {
	g := NewGenerator(testRate, config.MaxVolume)
	g.SetSpeed(100)
	stream(g, 44100) // let the glide settle

	buf := stream(g, 44100)
	// Count zero crossings over one second; a 400Hz sine has ~800.
	crossings := 0
	for i := 1; i < len(buf); i++ {
		if (buf[i-1][0] < 0) != (buf[i][0] < 0) {
			crossings++
		}
	}
	if crossings < 780 || crossings > 820 {
		t.Errorf("zero crossings in 1s = %d, want ~800 for a 400Hz tone", crossings)
	}
}
