// SPDX-License-Identifier: EPL-2.0

// Command audaug augments every audio file under an input directory tree,
// writing the randomized copies to a mirrored output tree.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ik5/audaug/internal/config"
	"github.com/ik5/audaug/internal/runner"
)

func main() {
	os.Exit(run())
}

const defaultConfigPath = "audaug.yaml"

func run() int {
	configPath := flag.String("config", defaultConfigPath, "path to the YAML configuration file")
	flag.Parse()

	// An explicitly passed -config must exist, even when it names the
	// default file.
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	// Optional .env next to the binary; real environment wins over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "audaug: loading .env: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audaug: %v\n", err)
		return 1
	}
	cfg.ApplyEnvOverrides()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	slog.Info("audaug starting",
		"input_dir", cfg.InputDir,
		"output_dir", cfg.OutputDir,
		"sample_rate", cfg.SampleRate,
		"augmentations_per_file", cfg.AugmentationsPerFile,
		"seed", cfg.Seed,
	)

	if err := runner.New(cfg, logger).Run(); err != nil {
		slog.Error("augmentation run failed", "err", err)
		return 1
	}

	return 0
}

// loadConfig falls back to the built-in defaults when the -config flag was
// left unset and the default file is absent; an explicitly named file must
// exist.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
