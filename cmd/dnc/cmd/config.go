package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the benchmark suite configuration.
type Config struct {
	Seed        int64        `toml:"seed"`
	Output      OutputConfig `toml:"output"`
	ClosestPair SuiteConfig  `toml:"closest_pair"`
	Matrix      SuiteConfig  `toml:"matrix_multiply"`
	Sorting     SuiteConfig  `toml:"sorting"`
}

// SuiteConfig configures one algorithm family.
type SuiteConfig struct {
	Sizes []int `toml:"sizes"`
	Runs  int   `toml:"runs"`
}

// OutputConfig names the export targets; empty paths skip the export.
type OutputConfig struct {
	JSON string `toml:"json"`
	CSV  string `toml:"csv"`
}

// DefaultConfig returns the suite run when no config file is given.
func DefaultConfig() Config {
	return Config{
		Seed: 1,
		Output: OutputConfig{
			JSON: "dnc_results.json",
			CSV:  "dnc_results.csv",
		},
		ClosestPair: SuiteConfig{Sizes: []int{1_000, 10_000, 100_000}, Runs: 3},
		Matrix:      SuiteConfig{Sizes: []int{64, 128, 256, 512}, Runs: 3},
		Sorting:     SuiteConfig{Sizes: []int{10_000, 100_000, 1_000_000}, Runs: 3},
	}
}

// LoadConfig reads a TOML config file, filling unset sections from the
// defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config file %q: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	return cfg, nil
}
