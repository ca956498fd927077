// SPDX-License-Identifier: EPL-2.0

package augment

import "math/rand"

// TimeShift circularly rotates the waveform by a fraction of its length
// drawn from the Fraction window. Positive fractions move content later in
// time; samples pushed past the end wrap around to the start, so no audio
// is lost and the length is unchanged.
type TimeShift struct {
	Fraction Window
}

func (TimeShift) Name() string { return "time_shift" }

func (t TimeShift) Apply(rng *rand.Rand, samples []float32, _ int) []float32 {
	frac := t.Fraction.draw(rng)
	return rotate(samples, frac)
}

func rotate(samples []float32, frac float64) []float32 {
	n := len(samples)
	if n == 0 {
		return []float32{}
	}

	offset := int(frac*float64(n)) % n
	if offset < 0 {
		offset += n
	}

	out := make([]float32, n)
	for i := range out {
		out[i] = samples[(i-offset+n)%n]
	}
	return out
}
