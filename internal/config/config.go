// Package config loads the analyzer settings from a YAML file and the
// environment. Priority: ENV > YAML > defaults (via env-default tags).
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable consulted when no config path is
// passed explicitly.
const PathEnv = "NGRAM_CONFIG"

// Bounds for TopK.
const (
	MinTopK = 1
	MaxTopK = 100
)

// Config is the root analyzer configuration.
type Config struct {
	TopK      int       `yaml:"top_k"      env:"NGRAM_TOP_K"      env-default:"10"`
	Workers   int       `yaml:"workers"    env:"NGRAM_WORKERS"    env-default:"1"`
	Column    string    `yaml:"column"     env:"NGRAM_COLUMN"     env-default:"SUBTLWF"`
	CachePath string    `yaml:"cache_path" env:"NGRAM_CACHE_PATH"`
	Progress  bool      `yaml:"progress"   env:"NGRAM_PROGRESS"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"NGRAM_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"NGRAM_LOG_FORMAT" env-default:"text"`
}

// LoadConfig reads configuration from the YAML file at path and the
// environment. An empty path falls back to $NGRAM_CONFIG; if that is unset
// too, only ENV and defaults apply. A path that was given but does not
// exist is an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(PathEnv)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the business rules of a loaded configuration. CLI
// overrides are applied on top of a loaded Config, so callers run it again
// after changing fields.
func (c *Config) Validate() error {
	if c.TopK < MinTopK || c.TopK > MaxTopK {
		return fmt.Errorf("top_k must be in %d..%d (got %d)", MinTopK, MaxTopK, c.TopK)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", c.Workers)
	}
	if c.Column == "" {
		return fmt.Errorf("column must not be empty")
	}
	return nil
}
