// Package config provides configuration management for spirotunes.
//
// This package handles:
//   - Loading settings from TOML files with koanf
//   - Default configuration values
//   - Clamping out-of-range values back to their defaults
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// 4 random curves, 5 degree steps, 10ms ticks
//	// 800x600 viewport, snapshots in the working directory
//
// # Loading from File
//
// Load merges, in order (last wins):
//   - $XDG_CONFIG_HOME/spirotunes/config.toml
//   - ./config.toml
//   - the path passed on the command line, if any
//
//	settings, err := config.Load("/path/to/config.toml")
//
// # Example File
//
//	log_level = "info"
//
//	[spiro]
//	curves = 6
//	step_degrees = 3
//	tick_ms = 16
//	viewport_width = 1024
//	viewport_height = 768
//	snapshot_dir = "~/Pictures/spiro"
//
//	[playlist]
//	output_dir = "."
//	histogram_bins = 20
package config
