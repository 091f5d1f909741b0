// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the service needs to run. Provider
// credentials are optional: a missing credential disables that provider
// and its lookup serves saved content instead.
type Config struct {
	Addr      string `env:"ADDR" env-default:"127.0.0.1:8080"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`

	// DatabaseURL enables the mood-history store. Optional: without it
	// check-in endpoints are disabled and no history baseline is used.
	DatabaseURL string `env:"DATABASE_URL"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`

	SpotifyID     string `env:"SPOTIFY_ID"`
	SpotifySecret string `env:"SPOTIFY_SECRET"`

	FoursquareAPIKey string `env:"FOURSQUARE_API_KEY"`
}

// Load reads configuration from environment variables, applying
// env-default tags for anything unset.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// SpotifyEnabled reports whether both Spotify credentials are set.
func (c *Config) SpotifyEnabled() bool {
	return c.SpotifyID != "" && c.SpotifySecret != ""
}
