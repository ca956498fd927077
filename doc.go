// SPDX-License-Identifier: EPL-2.0

// Package audaug expands small labeled audio datasets by writing randomized
// augmented copies of every waveform in an input directory tree.
//
// The input root is expected to group files by class subdirectory
// (e.g. dataset/yes/sample1.wav, dataset/no/sample2.wav). Every discovered
// file is loaded, resampled to a single target rate, mixed down to mono and
// then run several times through a fixed chain of probabilistic transforms:
//
//  1. Additive noise
//  2. Time stretch
//  3. Pitch shift
//  4. Time shift
//
// Each pass writes one {basename}_aug{i}.wav file to an output tree that
// mirrors the input's class subdirectories.
//
// # Supported Formats
//
// Input decoding supports the following formats:
//   - WAV (PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always mono 16-bit PCM WAV at the configured sample rate.
//
// # Quick Start
//
// The simplest way to load a waveform for augmentation is LoadMono:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	// samples is mono float32 at 16kHz, in [-1, 1]
//	samples, _ := audaug.LoadMono(src, 16000, 4096)
//
// Augmentation itself lives in the augment subpackage:
//
//	rng := rand.New(rand.NewSource(42))
//	chain := augment.NewChain(rng,
//		augment.Step{Transform: augment.AddNoise{Amplitude: augment.Window{Min: 0.001, Max: 0.015}}, Probability: 0.5},
//		augment.Step{Transform: augment.TimeShift{Fraction: augment.Window{Min: -0.25, Max: 0.25}}, Probability: 0.5},
//	)
//	out := chain.Apply(samples, 16000)
//
// The cmd/audaug binary ties discovery, the chain and WAV output together
// for whole-directory runs driven by a YAML configuration file.
//
// # Audio Processing Pipeline
//
// LoadMono is built from the audio subpackage, which can also be used
// directly for custom pipelines:
//
//	resampler := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// See the individual subpackages for more detailed documentation.
package audaug
