package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 4, s.Spiro.Curves)
	assert.Equal(t, 5, s.Spiro.StepDegrees)
	assert.Equal(t, 10*time.Millisecond, s.TickInterval())
	assert.Equal(t, 800, s.Viewport().Width)
	assert.Equal(t, 600, s.Viewport().Height)
	assert.Equal(t, ".", s.Spiro.SnapshotDir)
	assert.Equal(t, ".", s.Playlist.OutputDir)
	assert.Equal(t, 20, s.Playlist.HistogramBins)
}

func TestLoadFiles_NoFiles(t *testing.T) {
	s, err := LoadFiles()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadFiles_Overrides(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[spiro]
curves = 6
step_degrees = 3
tick_ms = 16
seed = 42
supersample = 3

[playlist]
output_dir = "/tmp/reports"
histogram_bins = 10
`)

	s, err := LoadFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 6, s.Spiro.Curves)
	assert.Equal(t, 3, s.Spiro.StepDegrees)
	assert.Equal(t, 16*time.Millisecond, s.TickInterval())
	assert.Equal(t, uint64(42), s.Spiro.Seed)
	assert.InDelta(t, 3.0, s.Spiro.Supersample, 1e-9)
	assert.Equal(t, "/tmp/reports", s.Playlist.OutputDir)
	assert.Equal(t, 10, s.Playlist.HistogramBins)

	// Untouched keys keep their defaults.
	assert.Equal(t, 800, s.Spiro.ViewportWidth)
	assert.Equal(t, 800, s.Playlist.ChartWidth)
}

func TestLoadFiles_LastWins(t *testing.T) {
	first := writeConfig(t, "[spiro]\ncurves = 2\ntick_ms = 20\n")
	second := writeConfig(t, "[spiro]\ncurves = 8\n")

	s, err := LoadFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, 8, s.Spiro.Curves)
	assert.Equal(t, 20, s.Spiro.TickMs)
}

func TestLoadFiles_ClampsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[spiro]
curves = -1
step_degrees = 0
tick_ms = -5
viewport_width = 0
supersample = 0.5

[playlist]
histogram_bins = 0
`)

	s, err := LoadFiles(path)
	require.NoError(t, err)

	def := DefaultSettings()
	assert.Equal(t, def.Spiro.Curves, s.Spiro.Curves)
	assert.Equal(t, def.Spiro.StepDegrees, s.Spiro.StepDegrees)
	assert.Equal(t, def.Spiro.TickMs, s.Spiro.TickMs)
	assert.Equal(t, def.Viewport(), s.Viewport())
	assert.InDelta(t, 1.0, s.Spiro.Supersample, 1e-9)
	assert.Equal(t, def.Playlist.HistogramBins, s.Playlist.HistogramBins)
}

func TestLoadFiles_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[spiro\ncurves = ")

	_, err := LoadFiles(path)
	assert.Error(t, err)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "spiro"), expandPath("~/spiro"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "", expandPath(""))
}
