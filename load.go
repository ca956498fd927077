// SPDX-License-Identifier: EPL-2.0

package audaug

import (
	"fmt"
	"io"

	"github.com/ik5/audaug/audio"
)

// LoadMono reads an entire audio source as mono float32 samples at targetRate.
//
// It builds the processing pipeline the augmenter feeds on:
//  1. Resample the source to targetRate using cubic interpolation
//  2. Mix the resampled audio down to mono by averaging channels
//  3. Collect every sample until the source is exhausted
//
// bufferSize is the read chunk size in samples (4096 is a reasonable
// default). The returned samples are in [-1, 1]; conversion to 16-bit PCM is
// left to the WAV writer so transforms can run in float.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	samples, err := audaug.LoadMono(src, 16000, 4096)
//	if err != nil {
//	    return err
//	}
//	// samples now holds the whole waveform, mono at 16kHz
func LoadMono(src audio.Source, targetRate int, bufferSize int) ([]float32, error) {
	resampler := audio.NewResampler(src, targetRate)
	mono := audio.NewMonoMixer(resampler)

	// Rough pre-allocation; grows as needed for longer inputs.
	samples := make([]float32, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("load mono: %w", err)
		}
	}

	return samples, nil
}
