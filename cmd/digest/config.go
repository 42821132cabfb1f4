package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/distgeo/digest"
)

// Environment keys. Flags override them.
const (
	envSeed     = "DIGEST_SEED"
	envEpsilon  = "DIGEST_EPSILON"
	envWorkers  = "DIGEST_WORKERS"
	envLogLevel = "DIGEST_LOG_LEVEL"
	envFile     = "DIGEST_ENV_FILE"
)

type config struct {
	Seed     int64
	Epsilon  float64
	Workers  int
	LogLevel slog.Level
}

// loadConfig reads an optional .env file (DIGEST_ENV_FILE, default ".env")
// and then the process environment. A missing file is not an error.
func loadConfig() (config, bool, error) {
	envLoaded := godotenv.Load(get(envFile, ".env")) == nil

	cfg := config{
		Epsilon: digest.DefaultEpsilon,
		Workers: 1,
	}
	var err error
	if cfg.Seed, err = parseEnv(envSeed, cfg.Seed, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}); err != nil {
		return cfg, envLoaded, err
	}
	if cfg.Epsilon, err = parseEnv(envEpsilon, cfg.Epsilon, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}); err != nil {
		return cfg, envLoaded, err
	}
	if cfg.Workers, err = parseEnv(envWorkers, cfg.Workers, strconv.Atoi); err != nil {
		return cfg, envLoaded, err
	}
	if cfg.LogLevel, err = parseEnv(envLogLevel, slog.LevelInfo, parseLevel); err != nil {
		return cfg, envLoaded, err
	}

	if cfg.Epsilon < 0 || math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 0) {
		return cfg, envLoaded, fmt.Errorf("%s must be finite and ≥ 0, got %g", envEpsilon, cfg.Epsilon)
	}
	if cfg.Workers < 1 {
		return cfg, envLoaded, fmt.Errorf("%s must be ≥ 1, got %d", envWorkers, cfg.Workers)
	}
	return cfg, envLoaded, nil
}

func get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseEnv[T any](key string, fallback T, parse func(string) (T, error)) (T, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := parse(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, raw, err)
	}
	return v, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}
