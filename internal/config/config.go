package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the parsed robovm.yaml project configuration.
type Config struct {
	// Mode selects the tree-shaker policy: "none", "conservative", or "aggressive".
	Mode string `yaml:"mode"`
	// Roots lists the internal names of classes to mark as entry points.
	Roots []string `yaml:"roots"`
	// ClassesDir is the directory ingest.LoadDir reads class descriptors from.
	ClassesDir string `yaml:"classes_dir"`

	Archive ArchiveConfig `yaml:"archive"`
	Output  OutputConfig  `yaml:"output"`
}

// ArchiveConfig configures the `robovm strip` include/exclude rules.
type ArchiveConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// OutputConfig configures default report rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Default returns the configuration used when no robovm.yaml is found.
func Default() *Config {
	return &Config{
		Mode:       "none",
		ClassesDir: ".",
		Output:     OutputConfig{Format: "text"},
	}
}

// Load reads and parses the YAML config file at path. A missing file
// is not an error — callers get Default() back — but a malformed one is.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
