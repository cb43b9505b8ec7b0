package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, "checkerboard", cfg.Puzzle)
	require.Equal(t, "color", cfg.Kind)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, 0, cfg.Workers)
}

func TestParseFlagOverrides(t *testing.T) {
	cfg, err := Parse([]string{"-puzzle", "dart", "-kind", "region-size", "-timeout", "10", "-workers", "4"})
	require.NoError(t, err)
	require.Equal(t, "dart", cfg.Puzzle)
	require.Equal(t, "region-size", cfg.Kind)
	require.Equal(t, 10*time.Second, cfg.Timeout)
	require.Equal(t, 4, cfg.Workers)
}

func TestParseRejectsNonPositiveTimeout(t *testing.T) {
	_, err := Parse([]string{"-timeout", "0"})
	require.Error(t, err)
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("GRIDSOLVE_TEST_KEY", "")
	require.Equal(t, "fallback", getEnv("GRIDSOLVE_TEST_KEY", "fallback"))

	t.Setenv("GRIDSOLVE_TEST_KEY", "value")
	require.Equal(t, "value", getEnv("GRIDSOLVE_TEST_KEY", "fallback"))
}

func TestGetEnvIntFallsBackOnInvalidValue(t *testing.T) {
	t.Setenv("GRIDSOLVE_TEST_INT", "not-a-number")
	require.Equal(t, 7, getEnvInt("GRIDSOLVE_TEST_INT", 7))

	t.Setenv("GRIDSOLVE_TEST_INT", "42")
	require.Equal(t, 42, getEnvInt("GRIDSOLVE_TEST_INT", 7))
}
