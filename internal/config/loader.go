// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path over the defaults and
// returns a validated Config.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r over the defaults and
// validates the result. Useful in tests where configs are constructed from
// string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	for i, ext := range cfg.Extensions {
		cfg.Extensions[i] = normalizeExt(ext)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.InputDir == "" {
		errs = append(errs, errors.New("input_dir is required"))
	}
	if cfg.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is required"))
	}
	if cfg.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate %d must be positive", cfg.SampleRate))
	}
	if cfg.AugmentationsPerFile <= 0 {
		errs = append(errs, fmt.Errorf("augmentations_per_file %d must be positive", cfg.AugmentationsPerFile))
	}
	if len(cfg.Extensions) == 0 {
		errs = append(errs, errors.New("extensions must list at least one file extension"))
	}
	for i, ext := range cfg.Extensions {
		if ext == "" || ext == "." {
			errs = append(errs, fmt.Errorf("extensions[%d] is empty", i))
		}
	}

	effects := []struct {
		name string
		e    Effect
	}{
		{"noise", cfg.Noise},
		{"time_stretch", cfg.TimeStretch},
		{"pitch_shift", cfg.PitchShift},
		{"time_shift", cfg.TimeShift},
	}
	for _, ef := range effects {
		if ef.e.Probability < 0 || ef.e.Probability > 1 {
			errs = append(errs, fmt.Errorf("%s.probability %.2f is out of range [0, 1]", ef.name, ef.e.Probability))
		}
		if ef.e.Min > ef.e.Max {
			errs = append(errs, fmt.Errorf("%s window [%g, %g] has min > max", ef.name, ef.e.Min, ef.e.Max))
		}
	}
	if cfg.TimeStretch.Probability > 0 && cfg.TimeStretch.Min <= 0 {
		errs = append(errs, fmt.Errorf("time_stretch window [%g, %g] must be positive", cfg.TimeStretch.Min, cfg.TimeStretch.Max))
	}

	return errors.Join(errs...)
}
