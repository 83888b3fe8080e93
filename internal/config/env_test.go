package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Size  int     `env:"ECHELON_TEST_SIZE" envDefault:"3"`
	Scale float64 `env:"ECHELON_TEST_SCALE" envDefault:"0.5"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 3, cfg.Size)
	require.Equal(t, 0.5, cfg.Scale)
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ECHELON_TEST_SIZE", "7")

	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 7, cfg.Size)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ECHELON_TEST_SIZE", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env:")
}
