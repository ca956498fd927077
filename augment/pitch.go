// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"math"
	"math/rand"
)

// PitchShift shifts the waveform's pitch by an amount drawn from the
// Semitones window while preserving its duration.
type PitchShift struct {
	Semitones Window
}

func (PitchShift) Name() string { return "pitch_shift" }

func (t PitchShift) Apply(rng *rand.Rand, samples []float32, _ int) []float32 {
	semitones := t.Semitones.draw(rng)
	return pitchShift(samples, semitones)
}

// pitchShift scales pitch by 2^(semitones/12). Resampling by that factor
// shifts pitch and duration together, then the overlap-add stretch undoes
// the duration change.
func pitchShift(samples []float32, semitones float64) []float32 {
	if semitones == 0 || len(samples) == 0 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out
	}

	factor := math.Pow(2, semitones/12.0)
	shifted := resampleBy(samples, factor)
	out := stretch(shifted, 1/factor)

	// Length rounding drifts by a sample or two across the two passes.
	return fitLength(out, len(samples))
}

// fitLength trims or zero-pads samples to exactly n samples.
func fitLength(samples []float32, n int) []float32 {
	if len(samples) == n {
		return samples
	}
	if len(samples) > n {
		return samples[:n]
	}
	out := make([]float32, n)
	copy(out, samples)
	return out
}
