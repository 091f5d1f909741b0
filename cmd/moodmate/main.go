// Command moodmate runs the MoodMate recommendation API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/moodmate/moodmate-backend/internal/config"
	"github.com/moodmate/moodmate-backend/internal/empathy"
	"github.com/moodmate/moodmate-backend/internal/foursquare"
	"github.com/moodmate/moodmate-backend/internal/history"
	"github.com/moodmate/moodmate-backend/internal/openai"
	"github.com/moodmate/moodmate-backend/internal/openlibrary"
	"github.com/moodmate/moodmate-backend/internal/quotable"
	"github.com/moodmate/moodmate-backend/internal/spotify"
	"github.com/moodmate/moodmate-backend/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogFormat)
	slog.SetDefault(logger)

	ctx := context.Background()

	engineOpts := []empathy.Option{
		empathy.WithLogger(logger),
		empathy.WithBooks(openlibrary.NewClient()),
		empathy.WithQuotes(quotable.NewClient()),
	}

	if cfg.OpenAIAPIKey != "" {
		engineOpts = append(engineOpts, empathy.WithTextGenerator(openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)))
	} else {
		logger.Warn("OPENAI_API_KEY not set, empathy messages will use saved content")
	}

	if cfg.SpotifyEnabled() {
		engineOpts = append(engineOpts, empathy.WithMusic(spotify.NewFromCredentials(ctx, cfg.SpotifyID, cfg.SpotifySecret)))
	} else {
		logger.Warn("Spotify credentials not set, music recommendations will use saved content")
	}

	if cfg.FoursquareAPIKey != "" {
		engineOpts = append(engineOpts, empathy.WithPlaces(foursquare.NewClient(cfg.FoursquareAPIKey)))
	} else {
		logger.Warn("FOURSQUARE_API_KEY not set, place suggestions will use saved content")
	}

	engine := empathy.New(engineOpts...)

	var store *history.Store
	if cfg.DatabaseURL != "" {
		store, err = history.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer store.Close()
	} else {
		logger.Warn("DATABASE_URL not set, check-in history is disabled")
	}

	handlers := web.NewHandlers(engine, store, logger)
	server := web.NewServer(web.ServerConfig{Addr: cfg.Addr, Logger: logger}, handlers)

	return server.Run()
}

func newLogger(format string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, nil)
	default:
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	return slog.New(handler)
}
