package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// errNoDictionary is returned when DICTIONARY_FILE is unset.
var errNoDictionary = errors.New("DICTIONARY_FILE is not set")

// config holds the command's environment settings.
type config struct {
	DictionaryFile string
	LogLevel       zerolog.Level
	Limit          int
	MinLength      int
	Unique         bool
}

// loadConfig reads config from the environment, applying defaults.
func loadConfig() (config, error) {
	cfg := config{
		DictionaryFile: os.Getenv("DICTIONARY_FILE"),
		LogLevel:       zerolog.InfoLevel,
		MinLength:      3,
		Unique:         true,
	}
	if cfg.DictionaryFile == "" {
		return cfg, errNoDictionary
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	if cfg.Limit, err = getEnvInt("BOGGLE_LIMIT", 0); err != nil {
		return cfg, err
	}
	if cfg.MinLength, err = getEnvInt("BOGGLE_MIN_LENGTH", cfg.MinLength); err != nil {
		return cfg, err
	}
	if v := os.Getenv("BOGGLE_UNIQUE"); v != "" {
		if cfg.Unique, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("BOGGLE_UNIQUE: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}

func getEnvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %d", k, n)
	}

	return n, nil
}
