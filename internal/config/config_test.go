package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.InDelta(t, 0.35, cfg.Strategy.BaseRequiredEquity, 1e-9)
	assert.Equal(t, "BTN", cfg.Table.Position)
	assert.Equal(t, 6, cfg.Table.Players)
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "advisor.hcl")
	content := `
strategy {
  base_required_equity = 0.4
}

table {
  players = 9
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// overridden
	assert.InDelta(t, 0.4, cfg.Strategy.BaseRequiredEquity, 1e-9)
	assert.Equal(t, 9, cfg.Table.Players)

	// untouched settings keep defaults
	assert.InDelta(t, 0.03, cfg.Strategy.MultiwayStep, 1e-9)
	assert.Equal(t, "BTN", cfg.Table.Position)
	assert.Equal(t, 120, cfg.Server.IdleTimeout)
}

func TestLoadInvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("strategy { base_required_equity = }"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestToStrategy(t *testing.T) {
	t.Parallel()

	strategy := DefaultConfig().ToStrategy()
	assert.InDelta(t, 0.35, strategy.BaseRequiredEquity, 1e-9)
	assert.InDelta(t, 0.15, strategy.LargeEdgeGap, 1e-9)
	assert.InDelta(t, 0.7, strategy.WeakHighCardCutoff, 1e-9)
}

func TestDefaultSituation(t *testing.T) {
	t.Parallel()

	sit := DefaultConfig().DefaultSituation()
	assert.Equal(t, "BTN", sit.Position)
	assert.InDelta(t, 100.0, sit.StackBB, 1e-9)
	assert.InDelta(t, 10.0, sit.PotBB, 1e-9)
	assert.Equal(t, 6, sit.Players)
}
