// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"math"
	"math/rand"
)

// TimeStretch changes the waveform's duration without changing its pitch.
// The stretch rate is drawn from the Rate window: rate > 1 speeds the audio
// up (shorter output), rate < 1 slows it down. Output length is
// len(input)/rate.
type TimeStretch struct {
	Rate Window
}

func (TimeStretch) Name() string { return "time_stretch" }

func (t TimeStretch) Apply(rng *rand.Rand, samples []float32, _ int) []float32 {
	rate := t.Rate.draw(rng)
	return stretch(samples, rate)
}

// olaFrame is the analysis frame length for the overlap-add stretch.
// At 16kHz this is 128ms, long enough to span several pitch periods of
// speech.
const olaFrame = 2048

// stretch time-stretches samples by rate using windowed overlap-add:
// Hann-windowed frames are taken from the input at rate-scaled positions
// and summed at fixed hops in the output, then normalized by the
// accumulated window weight. Plain OLA carries no phase alignment, which is
// fine for augmentation-grade quality.
func stretch(samples []float32, rate float64) []float32 {
	if rate == 1.0 || len(samples) == 0 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out
	}

	outLen := int(float64(len(samples)) / rate)
	if outLen < 1 {
		outLen = 1
	}

	// Shrink the frame for short inputs so at least two frames overlap.
	frame := olaFrame
	for frame > len(samples) {
		frame /= 2
	}
	if frame < 4 {
		// Nothing to window at this size; resampling is the best we can do.
		return resampleBy(samples, rate)
	}

	hop := frame / 4
	win := hannWindow(frame)

	out := make([]float32, outLen+frame)
	norm := make([]float32, outLen+frame)

	for outPos := 0; outPos < outLen; outPos += hop {
		inPos := int(float64(outPos) * rate)
		if inPos+frame > len(samples) {
			inPos = len(samples) - frame
		}
		for j := 0; j < frame; j++ {
			out[outPos+j] += samples[inPos+j] * win[j]
			norm[outPos+j] += win[j]
		}
	}

	for i := 0; i < outLen; i++ {
		if norm[i] > 1e-4 {
			out[i] /= norm[i]
		}
	}

	return out[:outLen]
}

func hannWindow(n int) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = float32(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1))))
	}
	return w
}
