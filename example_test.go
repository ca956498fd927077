// SPDX-License-Identifier: EPL-2.0

package audaug_test

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/ik5/audaug/augment"
	"github.com/ik5/audaug/formats/wav"
)

// Example_loading demonstrates the load pipeline: decoding a WAV file and
// collecting it as mono float32 samples.
func Example_loading() {
	// Create a simple WAV file in memory for demonstration
	samples := []int16{100, -100, 200, -200, 300, -300}
	wavData := new(bytes.Buffer)
	wav.WriteWAV16(wavData, 16000, samples)

	// Decode the WAV file
	decoder := wav.Decoder{}
	src, err := decoder.Decode(wavData)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
}

// Example_augmenting demonstrates running a waveform through an
// augmentation chain.
func Example_augmenting() {
	// A synthetic 1-second waveform at 16kHz
	samples := make([]float32, 16000)
	for i := range samples {
		samples[i] = float32(i%100) / 100.0
	}

	// Chain with every step firing; length-preserving transforms only,
	// so the output size is predictable.
	rng := rand.New(rand.NewSource(42))
	chain := augment.NewChain(rng,
		augment.Step{
			Transform:   augment.AddNoise{Amplitude: augment.Window{Min: 0.001, Max: 0.015}},
			Probability: 1.0,
		},
		augment.Step{
			Transform:   augment.TimeShift{Fraction: augment.Window{Min: -0.25, Max: 0.25}},
			Probability: 1.0,
		},
	)

	out := chain.Apply(samples, 16000)

	fmt.Printf("Input samples: %d\n", len(samples))
	fmt.Printf("Output samples: %d\n", len(out))
	// Output:
	// Input samples: 16000
	// Output samples: 16000
}

// Example_writing demonstrates saving an augmented waveform as WAV.
func Example_writing() {
	samples := make([]int16, 100)
	for i := range samples {
		if i%10 < 5 {
			samples[i] = 10000
		} else {
			samples[i] = -10000
		}
	}

	// Write to a buffer (in real code, use os.Create)
	output := new(bytes.Buffer)
	err := wav.WriteWAV16(output, 16000, samples)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Wrote WAV file: %d bytes\n", output.Len())
	// Output: Wrote WAV file: 244 bytes
}
