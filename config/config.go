// Package config loads the driver's YAML configuration file, per
// SPEC_FULL.md section 6a: fields mirror spec.md section 6's "Driver
// configuration (abstract)" (strategy, threads, chunk_size,
// canonical_iters). Grounded on TobiSchelling-AICrawler's
// internal/config/config.go: the same yaml:"..." struct tags, the same
// //go:embed default document plus ResolveConfigPath search order, and the
// same Load/parse split.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nj-go/njoin/nj"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

// Config is the on-disk shape of a driver run's tuning knobs.
type Config struct {
	Strategy       string `yaml:"strategy"`
	Threads        int    `yaml:"threads"`
	ChunkSize      int    `yaml:"chunk_size"`
	CanonicalIters int    `yaml:"canonical_iters"`
}

// ConfigDir returns the XDG config directory for njoin.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "njoin")
}

// ResolveConfigPath finds the config file following priority: explicit
// path > ~/.config/njoin/config.yaml > ./config.yaml.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}

		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nuse --config to pass one explicitly, or rely on the built-in defaults",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return parse(data)
}

// Default parses the embedded default document.
func Default() (*Config, error) { return parse(DefaultConfigYAML) }

// parse parses YAML bytes into a Config, seeded from the embedded defaults
// so a partial document only overrides the fields it sets.
func parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(DefaultConfigYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing default config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ToOptions translates a parsed Config into nj.Options, per SPEC_FULL.md
// section 6a. An unrecognised strategy name is a ConfigInvalid nj.Error,
// since it can only come from a malformed document.
func (c *Config) ToOptions() (nj.Options, error) {
	opts := nj.Options{
		Threads:        c.Threads,
		ChunkSize:      c.ChunkSize,
		CanonicalIters: c.CanonicalIters,
	}

	switch c.Strategy {
	case "canonical", "":
		opts.Strategy = nj.StrategyCanonical
	case "pruned":
		opts.Strategy = nj.StrategyPruned
	case "hybrid":
		opts.Strategy = nj.StrategyHybrid
	default:
		return opts, &nj.Error{Kind: nj.ConfigInvalid, Detail: fmt.Sprintf("unknown strategy %q", c.Strategy)}
	}

	return opts, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return home
}
