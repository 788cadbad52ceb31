package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/presets"
)

func TestResolvePreset(t *testing.T) {
	cfg := config.DefaultSnakeConfig()

	p, err := resolvePreset(nil, cfg, false)
	require.NoError(t, err)
	require.Equal(t, presets.Classic, p.ID)

	p, err = resolvePreset([]string{presets.Compact}, cfg, false)
	require.NoError(t, err)
	require.Equal(t, 15, p.Width)

	cfg.Grid.Width, cfg.Grid.Height = 15, 15
	p, err = resolvePreset(nil, cfg, false)
	require.NoError(t, err)
	require.Equal(t, presets.Compact, p.ID)

	cfg.Grid.Width, cfg.Grid.Height = 30, 12
	p, err = resolvePreset(nil, cfg, false)
	require.NoError(t, err)
	require.Equal(t, "custom-30x12", p.ID)

	_, err = resolvePreset([]string{"nope"}, cfg, false)
	require.Error(t, err)
}

func TestResolvePresetRejectsGridFlagsWithName(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Width = 30

	_, err := resolvePreset([]string{presets.Compact}, cfg, true)
	require.ErrorIs(t, err, errPresetWithGrid)

	// Without a name the flags pick a custom grid.
	p, err := resolvePreset(nil, cfg, true)
	require.NoError(t, err)
	require.Equal(t, "custom-30x20", p.ID)
}
