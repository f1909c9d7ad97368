package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is not set.
const DefaultPath = "./config.yaml"

// Load reads configuration from YAML and the environment, normalizes it and
// validates it. Priority: ENV > YAML > env-default tags.
//
// The YAML path comes from CONFIG_PATH. Without it DefaultPath is tried and
// may be absent, in which case only ENV and defaults apply. An explicit path
// that does not exist is an error.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// normalize canonicalizes values that are compared or concatenated later:
// language names are matched lowercase and the base URL gets a path appended.
func (c *Config) normalize() {
	c.Parser.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.Parser.DefaultLanguage))
	c.Wiktionary.BaseURL = strings.TrimRight(strings.TrimSpace(c.Wiktionary.BaseURL), "/")
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}
