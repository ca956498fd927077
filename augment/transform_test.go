// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"math"
	"math/rand"
	"testing"
)

func testWaveform(n int) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(i%97)/97.0 - 0.5
	}
	return samples
}

func sineWaveform(n int, frequency, rate float64) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		t := float64(i) / rate
		samples[i] = float32(math.Sin(2 * math.Pi * frequency * t))
	}
	return samples
}

func fullChain(rng *rand.Rand, prob float64) *Chain {
	return NewChain(rng,
		Step{Transform: AddNoise{Amplitude: Window{Min: 0.001, Max: 0.015}}, Probability: prob},
		Step{Transform: TimeStretch{Rate: Window{Min: 0.8, Max: 1.25}}, Probability: prob},
		Step{Transform: PitchShift{Semitones: Window{Min: -4, Max: 4}}, Probability: prob},
		Step{Transform: TimeShift{Fraction: Window{Min: -0.25, Max: 0.25}}, Probability: prob},
	)
}

func TestChain_Deterministic(t *testing.T) {
	t.Parallel()

	samples := testWaveform(8000)

	run := func() [][]float32 {
		chain := fullChain(rand.New(rand.NewSource(42)), 0.5)
		var outs [][]float32
		for i := 0; i < 5; i++ {
			outs = append(outs, chain.Apply(samples, 16000))
		}
		return outs
	}

	first := run()
	second := run()

	for i := range first {
		if len(first[i]) != len(second[i]) {
			t.Fatalf("pass %d: lengths differ: %d vs %d", i, len(first[i]), len(second[i]))
		}
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("pass %d: sample %d differs: %v vs %v", i, j, first[i][j], second[i][j])
			}
		}
	}
}

func TestChain_ZeroProbabilityIsIdentity(t *testing.T) {
	t.Parallel()

	samples := testWaveform(4000)
	chain := fullChain(rand.New(rand.NewSource(1)), 0)

	out := chain.Apply(samples, 16000)

	if len(out) != len(samples) {
		t.Fatalf("Apply() length = %d, want %d", len(out), len(samples))
	}
	for i := range out {
		if out[i] != samples[i] {
			t.Fatalf("sample %d changed with zero probability: %v vs %v", i, out[i], samples[i])
		}
	}
}

func TestChain_FullProbabilityFiresEveryStep(t *testing.T) {
	t.Parallel()

	samples := testWaveform(8000)
	chain := fullChain(rand.New(rand.NewSource(7)), 1.0)

	out := chain.Apply(samples, 16000)

	// Noise alone guarantees a change; stretch may also change the length.
	changed := len(out) != len(samples)
	if !changed {
		for i := range out {
			if out[i] != samples[i] {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("Apply() with probability 1 left the waveform untouched")
	}
}

func TestChain_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	samples := testWaveform(4000)
	original := make([]float32, len(samples))
	copy(original, samples)

	chain := fullChain(rand.New(rand.NewSource(3)), 1.0)
	_ = chain.Apply(samples, 16000)

	for i := range samples {
		if samples[i] != original[i] {
			t.Fatalf("input sample %d mutated: %v vs %v", i, samples[i], original[i])
		}
	}
}

func TestChain_StepOrder(t *testing.T) {
	t.Parallel()

	chain := fullChain(rand.New(rand.NewSource(1)), 0.5)

	want := []string{"add_noise", "time_stretch", "pitch_shift", "time_shift"}
	steps := chain.Steps()
	if len(steps) != len(want) {
		t.Fatalf("Steps() count = %d, want %d", len(steps), len(want))
	}
	for i, s := range steps {
		if s.Transform.Name() != want[i] {
			t.Errorf("steps[%d] = %q, want %q", i, s.Transform.Name(), want[i])
		}
	}
}

func TestWindow_DrawStaysInside(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))
	w := Window{Min: -4, Max: 4}

	for i := 0; i < 1000; i++ {
		v := w.draw(rng)
		if v < w.Min || v > w.Max {
			t.Fatalf("draw() = %v, outside [%v, %v]", v, w.Min, w.Max)
		}
	}
}

func TestWindow_DegenerateWindow(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))
	w := Window{Min: 1.5, Max: 1.5}

	for i := 0; i < 10; i++ {
		if v := w.draw(rng); v != 1.5 {
			t.Fatalf("draw() = %v, want 1.5", v)
		}
	}
}
