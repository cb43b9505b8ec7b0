// Package config loads run configuration for the CLI front ends from
// flags, with environment variable defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config configures a single CLI invocation of either front end.
type Config struct {
	Puzzle  string
	Kind    string
	Timeout time.Duration
	Workers int
}

// Parse parses args (typically os.Args[1:]) into a Config.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("gridsolve", flag.ContinueOnError)
	puzzle := fs.String("puzzle", getEnv("GRIDSOLVE_PUZZLE", "checkerboard"), "name of the example puzzle to load")
	kind := fs.String("kind", getEnv("GRIDSOLVE_KIND", "color"), "presentation kind: color, region-size, region-leader, region-rank, visible-total")
	timeoutSeconds := fs.Int("timeout", getEnvInt("GRIDSOLVE_TIMEOUT_SECONDS", 5), "solver timeout in seconds")
	workers := fs.Int("workers", getEnvInt("GRIDSOLVE_WORKERS", 0), "deduction loop worker count (0 = GOMAXPROCS)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *timeoutSeconds <= 0 {
		return nil, fmt.Errorf("config: -timeout must be positive, got %d", *timeoutSeconds)
	}

	return &Config{
		Puzzle:  *puzzle,
		Kind:    *kind,
		Timeout: time.Duration(*timeoutSeconds) * time.Second,
		Workers: *workers,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
