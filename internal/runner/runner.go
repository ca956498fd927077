// SPDX-License-Identifier: EPL-2.0

// Package runner drives a whole augmentation run: it discovers the input
// files, loads each one through the decode/resample/mono pipeline, applies
// the augmentation chain and writes the mirrored output tree.
package runner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/audaug"
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/augment"
	"github.com/ik5/audaug/formats/aiff"
	"github.com/ik5/audaug/formats/mp3"
	"github.com/ik5/audaug/formats/vorbis"
	"github.com/ik5/audaug/formats/wav"
	"github.com/ik5/audaug/internal/config"
	"github.com/ik5/audaug/utils"
)

const loadBufferSize = 4096

// Runner holds everything a run needs: the configuration, the decoder
// registry, and the augmentation chain with its seeded RNG.
type Runner struct {
	cfg   *config.Config
	reg   *audio.Registry
	chain *augment.Chain
	log   *slog.Logger
}

// New builds a Runner from cfg. The chain order is fixed: noise, time
// stretch, pitch shift, time shift.
func New(cfg *config.Config, log *slog.Logger) *Runner {
	reg := audio.NewRegistry()
	reg.Register(".wav", wav.Decoder{})
	reg.Register(".mp3", mp3.Decoder{})
	reg.Register(".ogg", vorbis.Decoder{})
	reg.Register(".aif", aiff.Decoder{})
	reg.Register(".aiff", aiff.Decoder{})

	rng := rand.New(rand.NewSource(cfg.Seed))
	chain := augment.NewChain(rng,
		augment.Step{
			Transform:   augment.AddNoise{Amplitude: window(cfg.Noise)},
			Probability: cfg.Noise.Probability,
		},
		augment.Step{
			Transform:   augment.TimeStretch{Rate: window(cfg.TimeStretch)},
			Probability: cfg.TimeStretch.Probability,
		},
		augment.Step{
			Transform:   augment.PitchShift{Semitones: window(cfg.PitchShift)},
			Probability: cfg.PitchShift.Probability,
		},
		augment.Step{
			Transform:   augment.TimeShift{Fraction: window(cfg.TimeShift)},
			Probability: cfg.TimeShift.Probability,
		},
	)

	return &Runner{
		cfg:   cfg,
		reg:   reg,
		chain: chain,
		log:   log,
	}
}

func window(e config.Effect) augment.Window {
	return augment.Window{Min: e.Min, Max: e.Max}
}

// Run discovers every matching file under the input root and augments each
// in turn, sequentially, failing fast on the first error.
//
// The RNG is seeded once for the whole run and never reseeded between
// files, so the draws a file sees depend on how many draws earlier files
// consumed. A run reproduces exactly only when the file set and walk order
// match; partial reruns land on a different draw sequence.
func (r *Runner) Run() error {
	files, err := r.discover()
	if err != nil {
		return fmt.Errorf("discovering input files: %w", err)
	}

	r.log.Info("input files discovered", "dir", r.cfg.InputDir, "count", len(files))

	for _, path := range files {
		if err := r.processFile(path); err != nil {
			return fmt.Errorf("augmenting %s: %w", path, err)
		}
	}

	r.log.Info("augmentation complete",
		"files", len(files),
		"outputs", len(files)*r.cfg.AugmentationsPerFile,
		"dir", r.cfg.OutputDir)
	return nil
}

// discover walks the input root and returns every file whose extension is
// in the configured list, in walk order.
func (r *Runner) discover() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.cfg.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(r.cfg.Extensions, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// processFile loads one waveform at the target rate and writes
// AugmentationsPerFile augmented copies of it. Every copy is derived from
// the loaded original, never from a previous copy.
func (r *Runner) processFile(path string) error {
	r.log.Info("augmenting file", "path", path)

	samples, err := r.load(path)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(r.cfg.InputDir, path)
	if err != nil {
		return fmt.Errorf("relativizing path: %w", err)
	}

	outDir := filepath.Join(r.cfg.OutputDir, filepath.Dir(rel))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for i := 1; i <= r.cfg.AugmentationsPerFile; i++ {
		augmented := r.chain.Apply(samples, r.cfg.SampleRate)
		outPath := filepath.Join(outDir, fmt.Sprintf("%s_aug%d.wav", base, i))

		if err := writeWavFile(outPath, r.cfg.SampleRate, augmented); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		r.log.Info("wrote augmented file", "path", outPath)
	}

	return nil
}

// load decodes path via the registry and collects it as mono float32 at the
// configured sample rate.
func (r *Runner) load(path string) ([]float32, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := r.reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	defer src.Close()

	return audaug.LoadMono(src, r.cfg.SampleRate, loadBufferSize)
}

func writeWavFile(path string, rate int, samples []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	pcm := utils.Float32ToInt16Slice(samples)
	if err := wav.WriteWAV16(f, rate, pcm); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
