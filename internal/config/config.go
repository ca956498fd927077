// SPDX-License-Identifier: EPL-2.0

// Package config holds the augmenter's run configuration: directory roots,
// the target sample rate, the per-file augmentation count, the random seed
// and the parameter windows of each transform.
package config

import (
	"os"
	"strings"
)

// Effect configures one transform in the chain: its independent activation
// probability and the [Min, Max] window its parameter is drawn from. The
// parameter's meaning depends on the transform (noise amplitude, stretch
// rate, semitones, shift fraction).
type Effect struct {
	Probability float64 `yaml:"probability"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
}

// Config is the full configuration surface of a run.
type Config struct {
	// InputDir is the dataset root; its subdirectories are class labels.
	InputDir string `yaml:"input_dir"`
	// OutputDir receives the mirrored augmented tree.
	OutputDir string `yaml:"output_dir"`
	// SampleRate every waveform is resampled to before augmentation, and
	// the rate of every output file.
	SampleRate int `yaml:"sample_rate"`
	// AugmentationsPerFile is how many augmented copies each input yields.
	AugmentationsPerFile int `yaml:"augmentations_per_file"`
	// Seed initializes the single RNG driving every random draw of the run.
	Seed int64 `yaml:"seed"`
	// Extensions lists the file extensions discovery matches (lowercase,
	// with the leading dot).
	Extensions []string `yaml:"extensions"`

	Noise       Effect `yaml:"noise"`
	TimeStretch Effect `yaml:"time_stretch"`
	PitchShift  Effect `yaml:"pitch_shift"`
	TimeShift   Effect `yaml:"time_shift"`
}

// Default returns the configuration a run starts from; a YAML file
// overrides individual fields.
func Default() *Config {
	return &Config{
		InputDir:             "dataset",
		OutputDir:            "dataset_augmented",
		SampleRate:           16000,
		AugmentationsPerFile: 5,
		Seed:                 42,
		Extensions:           []string{".wav"},
		Noise:                Effect{Probability: 0.5, Min: 0.001, Max: 0.015},
		TimeStretch:          Effect{Probability: 0.5, Min: 0.8, Max: 1.25},
		PitchShift:           Effect{Probability: 0.5, Min: -4, Max: 4},
		TimeShift:            Effect{Probability: 0.5, Min: -0.25, Max: 0.25},
	}
}

// ApplyEnvOverrides lets the environment replace the directory roots, so
// the same config file can drive runs over different dataset checkouts.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("AUDAUG_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("AUDAUG_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
