package config_test

import (
	"testing"

	"stock-keeper/core/config"
	"stock-keeper/feature/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Sim.Days)
	assert.Equal(t, stock.FormatTable, cfg.Sim.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SIM_DAYS", "7")
	t.Setenv("SIM_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Sim.Days)
	assert.Equal(t, stock.FormatJSON, cfg.Sim.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}
