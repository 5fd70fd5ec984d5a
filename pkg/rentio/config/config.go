package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rentio/rentio/pkg/rentio/internalerr"
)

// Config is the assistant's YAML configuration.
type Config struct {
	Catalog  CatalogConfig `yaml:"catalog"`
	Store    string        `yaml:"store"`       // memory | sqlite
	DBPath   string        `yaml:"db_path"`     // sqlite only, default ":memory:"
	Lexicon  string        `yaml:"lexicon"`     // optional synonym file
	Stoplist string        `yaml:"stoplist"`    // optional stopword file
	Debug    bool          `yaml:"debug"`       // debug logging
}

// CatalogConfig locates the catalog file.
type CatalogConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // csv | xlsx, default by extension
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for contradictions.
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required: %w", internalerr.ErrInvalidConfig)
	}
	switch c.Store {
	case "", "memory", "sqlite":
	default:
		return fmt.Errorf("store %q: %w", c.Store, internalerr.ErrInvalidConfig)
	}
	switch c.Catalog.Format {
	case "", "csv", "xlsx":
	default:
		return fmt.Errorf("catalog.format %q: %w", c.Catalog.Format, internalerr.ErrInvalidConfig)
	}
	return nil
}
