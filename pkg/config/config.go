// Package config loads process configuration from environment variables.
package config

import (
	"log/slog"
	"os"

	"nurikabe/pkg/constants"
)

// Config holds the settings cmd/server reads from the environment.
type Config struct {
	Port        string
	PuzzlesFile string
	LogLevel    slog.Level
	LogFile     string
}

// Load reads Config from the environment, applying defaults for anything
// unset.
func Load() (*Config, error) {
	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        getEnv("PORT", constants.DefaultPort),
		PuzzlesFile: getEnv("PUZZLES_FILE", "/data/puzzles.json"),
		LogLevel:    level,
		LogFile:     getEnv("LOG_FILE", ""),
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
