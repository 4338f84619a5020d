package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillclimb/internal/search"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultRunConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, search.KindHeuristic, cfg.GetStrategy())
	assert.Equal(t, 1, cfg.GetBudget())
	assert.Equal(t, 5000, cfg.GetStepsPerTick())
	assert.Equal(t, 10*time.Millisecond, cfg.GetTickDelay())
	assert.Equal(t, 0, cfg.GetMaxTicks())
	assert.True(t, cfg.GetRender())
	assert.Equal(t, "", cfg.GetLedgerPath())
	assert.Equal(t, 64, cfg.GetMaxEnumerateCells())
}

func TestEmptyConfigFallsBack(t *testing.T) {
	cfg := &RunConfig{}
	assert.Equal(t, DefaultRunConfig().GetStrategy(), cfg.GetStrategy())
	assert.Equal(t, DefaultStepsPerTick, cfg.GetStepsPerTick())
	assert.Equal(t, 10*time.Millisecond, cfg.GetTickDelay())
	assert.True(t, cfg.GetRender())
}

func TestLoadRunConfig(t *testing.T) {
	path := writeConfig(t, "run.json", `{
  "strategy": "naive",
  "budget": 4,
  "tick_delay": "250ms",
  "render": false,
  "ledger_path": "runs.db"
}`)

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)

	assert.Equal(t, search.KindNaive, cfg.GetStrategy())
	assert.Equal(t, 4, cfg.GetBudget())
	assert.Equal(t, 250*time.Millisecond, cfg.GetTickDelay())
	assert.False(t, cfg.GetRender())
	assert.Equal(t, "runs.db", cfg.GetLedgerPath())
	// Omitted fields keep their defaults.
	assert.Equal(t, DefaultStepsPerTick, cfg.GetStepsPerTick())
	assert.Nil(t, cfg.MaxTicks)
}

func TestLoadRunConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"wrong extension", "run.yaml", `{}`},
		{"bad json", "run.json", `{"budget": `},
		{"unknown strategy", "run.json", `{"strategy": "dijkstra"}`},
		{"zero budget", "run.json", `{"budget": 0}`},
		{"zero steps", "run.json", `{"steps_per_tick": 0}`},
		{"bad delay", "run.json", `{"tick_delay": "soon"}`},
		{"negative delay", "run.json", `{"tick_delay": "-1s"}`},
		{"negative ticks", "run.json", `{"max_ticks": -2}`},
		{"negative enumerate", "run.json", `{"max_enumerate_cells": -1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRunConfig(writeConfig(t, tt.file, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadRunConfigRejectsOversizedFile(t *testing.T) {
	body := `{"strategy": "naive"` + strings.Repeat(" ", maxConfigBytes) + `}`
	_, err := LoadRunConfig(writeConfig(t, "big.json", body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "larger than")
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	_, err := LoadRunConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
