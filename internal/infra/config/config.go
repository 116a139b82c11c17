package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig describes the digest run configuration.
type AppConfig struct {
	Ghost struct {
		URL      string        `envconfig:"GHOST_URL"`
		AdminKey string        `envconfig:"GHOST_ADMIN_API_KEY"`
		Timeout  time.Duration `envconfig:"GHOST_TIMEOUT" default:"30s"`
	} `envconfig:""`

	Digest struct {
		Period       string   `envconfig:"DIGEST_PERIOD" default:"weekly"`
		Tags         []string `envconfig:"DIGEST_TAGS" default:"Digest"`
		ExcludedTags []string `envconfig:"DIGEST_EXCLUDED_TAGS"`
		Timezone     string   `envconfig:"DIGEST_TIMEZONE" default:"America/New_York"`
		Title        string   `envconfig:"DIGEST_TITLE"`
		FullArticle  bool     `envconfig:"DIGEST_FULL_ARTICLE" default:"false"`
		Debug        bool     `envconfig:"DIGEST_DEBUG" default:"false"`
	} `envconfig:""`
}

// Load reads the config from the environment.
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first missing required setting. It runs after flag
// overrides are applied, so flag values count.
func (c AppConfig) Validate() error {
	if c.Ghost.URL == "" {
		return errors.New("ghost url is required (GHOST_URL or --url)")
	}
	if c.Ghost.AdminKey == "" {
		return errors.New("ghost admin api key is required (GHOST_ADMIN_API_KEY)")
	}
	return nil
}
