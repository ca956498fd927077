// SPDX-License-Identifier: EPL-2.0

package augment

import "github.com/ik5/audaug/utils"

// resampleBy reads the waveform at ratio source samples per output sample
// using Catmull-Rom interpolation, the same math the streaming
// audio.Resampler uses, applied to a whole in-memory buffer. ratio > 1
// shortens the waveform (raising pitch on playback), ratio < 1 lengthens it.
func resampleBy(samples []float32, ratio float64) []float32 {
	if len(samples) == 0 {
		return []float32{}
	}
	if ratio == 1.0 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out
	}

	outLen := int(float64(len(samples)) / ratio)
	if outLen < 1 {
		outLen = 1
	}

	out := make([]float32, outLen)
	pos := 0.0
	for i := range out {
		idx := int(pos)
		frac := float32(pos - float64(idx))
		out[i] = utils.CubicInterpolate(
			sampleAt(samples, idx-1),
			sampleAt(samples, idx),
			sampleAt(samples, idx+1),
			sampleAt(samples, idx+2),
			frac,
		)
		pos += ratio
	}
	return out
}

// sampleAt clamps out-of-range indexes to the waveform edges so the
// interpolator can look one sample past either end.
func sampleAt(samples []float32, i int) float32 {
	if i < 0 {
		return samples[0]
	}
	if i >= len(samples) {
		return samples[len(samples)-1]
	}
	return samples[i]
}
