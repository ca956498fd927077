// SPDX-License-Identifier: EPL-2.0

package augment

import "math/rand"

// AddNoise adds Gaussian noise to the waveform. The noise standard
// deviation is drawn from the Amplitude window, so values around 0.001 to
// 0.015 keep the noise subtle relative to full-scale [-1, 1] audio.
type AddNoise struct {
	Amplitude Window
}

func (AddNoise) Name() string { return "add_noise" }

func (t AddNoise) Apply(rng *rand.Rand, samples []float32, _ int) []float32 {
	amp := t.Amplitude.draw(rng)

	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = s + float32(rng.NormFloat64()*amp)
	}
	return out
}
