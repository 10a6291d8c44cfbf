package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/handiism/spirotunes/internal/spiro"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "spirotunes"

// Settings holds all configuration options.
type Settings struct {
	LogLevel string `koanf:"log_level"` // debug, info, warn, error

	Spiro    SpiroSettings    `koanf:"spiro"`
	Playlist PlaylistSettings `koanf:"playlist"`
}

// SpiroSettings configures the curve generator.
type SpiroSettings struct {
	Curves         int     `koanf:"curves"`          // curves drawn at once in random mode
	StepDegrees    int     `koanf:"step_degrees"`    // angle increment per point
	TickMs         int     `koanf:"tick_ms"`         // animation tick interval
	ViewportWidth  int     `koanf:"viewport_width"`  // logical drawing width
	ViewportHeight int     `koanf:"viewport_height"` // logical drawing height
	SnapshotDir    string  `koanf:"snapshot_dir"`    // where s writes .eps/.png
	Supersample    float64 `koanf:"supersample"`     // PNG render scale before shrinking
	Seed           uint64  `koanf:"seed"`            // 0 means a random seed per run
	LogFile        string  `koanf:"log_file"`        // log destination while the UI runs
}

// PlaylistSettings configures the playlist analyzer.
type PlaylistSettings struct {
	OutputDir     string `koanf:"output_dir"`     // where common.txt, dups.txt, stats.png go
	HistogramBins int    `koanf:"histogram_bins"` // duration histogram bins
	ChartWidth    int    `koanf:"chart_width"`    // stats.png width in pixels
	ChartHeight   int    `koanf:"chart_height"`   // stats.png height in pixels
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel: "info",
		Spiro: SpiroSettings{
			Curves:         spiro.DefaultCurveCount,
			StepDegrees:    spiro.DefaultStep,
			TickMs:         10,
			ViewportWidth:  spiro.DefaultViewport.Width,
			ViewportHeight: spiro.DefaultViewport.Height,
			SnapshotDir:    ".",
			Supersample:    2,
			LogFile:        filepath.Join(os.TempDir(), appName+".log"),
		},
		Playlist: PlaylistSettings{
			OutputDir:     ".",
			HistogramBins: 20,
			ChartWidth:    800,
			ChartHeight:   800,
		},
	}
}

// Load reads settings from the standard config locations and then from
// path, if path is not empty. Missing standard files are skipped; a
// missing explicit path is an error.
func Load(path string) (*Settings, error) {
	var paths []string
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, "config.toml")); err == nil {
		paths = append(paths, p)
	}
	if _, err := os.Stat("config.toml"); err == nil {
		paths = append(paths, "config.toml")
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return LoadFiles(paths...)
}

// LoadFiles merges the given TOML files over the defaults, in order.
func LoadFiles(paths ...string) (*Settings, error) {
	k := koanf.New(".")
	for _, p := range paths {
		if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	settings := DefaultSettings()
	if err := k.Unmarshal("", settings); err != nil {
		return nil, err
	}
	settings.normalize()
	return settings, nil
}

// normalize expands ~ in paths and resets out-of-range values to defaults.
func (s *Settings) normalize() {
	def := DefaultSettings()

	if s.Spiro.Curves <= 0 {
		s.Spiro.Curves = def.Spiro.Curves
	}
	if s.Spiro.StepDegrees <= 0 || s.Spiro.StepDegrees > 360 {
		s.Spiro.StepDegrees = def.Spiro.StepDegrees
	}
	if s.Spiro.TickMs <= 0 {
		s.Spiro.TickMs = def.Spiro.TickMs
	}
	if s.Spiro.ViewportWidth <= 0 || s.Spiro.ViewportHeight <= 0 {
		s.Spiro.ViewportWidth = def.Spiro.ViewportWidth
		s.Spiro.ViewportHeight = def.Spiro.ViewportHeight
	}
	if s.Spiro.Supersample < 1 {
		s.Spiro.Supersample = 1
	}
	if s.Playlist.HistogramBins <= 0 {
		s.Playlist.HistogramBins = def.Playlist.HistogramBins
	}
	if s.Playlist.ChartWidth <= 0 || s.Playlist.ChartHeight <= 0 {
		s.Playlist.ChartWidth = def.Playlist.ChartWidth
		s.Playlist.ChartHeight = def.Playlist.ChartHeight
	}

	s.Spiro.SnapshotDir = expandPath(s.Spiro.SnapshotDir)
	s.Spiro.LogFile = expandPath(s.Spiro.LogFile)
	s.Playlist.OutputDir = expandPath(s.Playlist.OutputDir)
}

// Viewport returns the logical drawing area.
func (s *Settings) Viewport() spiro.Viewport {
	return spiro.Viewport{Width: s.Spiro.ViewportWidth, Height: s.Spiro.ViewportHeight}
}

// TickInterval returns the animation tick as a duration.
func (s *Settings) TickInterval() time.Duration {
	return time.Duration(s.Spiro.TickMs) * time.Millisecond
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
