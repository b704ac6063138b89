package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by statsdump.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// StatsDump holds configuration for the statsdump inspection tool.
// It never carries stat values: the catalog is compiled in.
type StatsDump struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Output
	Format      string `yaml:"format"` // table or yaml
	Fingerprint bool   `yaml:"fingerprint"`

	// Filter: record names to print, all when empty.
	Only []string `yaml:"only"`
}

// DefaultStatsDump returns StatsDump config with sensible defaults.
func DefaultStatsDump() StatsDump {
	return StatsDump{
		LogLevel:    "info",
		Format:      FormatTable,
		Fingerprint: true,
	}
}

// Validate checks enumerated fields.
func (c StatsDump) Validate() error {
	switch c.Format {
	case FormatTable, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatTable, FormatYAML)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// LoadStatsDump loads statsdump config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadStatsDump(path string) (StatsDump, error) {
	cfg := DefaultStatsDump()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
