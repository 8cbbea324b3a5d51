// Package config loads and validates the swipey configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ModifierKey names the modifier whose double-tap triggers zoom.
type ModifierKey string

const (
	ModifierSuper ModifierKey = "super"
	ModifierCtrl  ModifierKey = "ctrl"
	ModifierAlt   ModifierKey = "alt"
)

// Config is the effective daemon configuration.
type Config struct {
	// Margin is the space kept between tiled windows and the screen edge.
	Margin float64 `yaml:"margin"`
	// Gap is the space kept between two adjacent tiled windows.
	Gap float64 `yaml:"gap"`

	// DeadZone is the accumulated swipe distance below which a gesture
	// stays unresolved.
	DeadZone float64 `yaml:"dead_zone"`

	// SequenceTimeoutMS bounds the gap between the first modifier release
	// and the second press of a double-tap.
	SequenceTimeoutMS int `yaml:"sequence_timeout_ms"`
	// HoldThresholdMS bounds how long the activating press may be held for
	// its release to still collapse the zoomed window.
	HoldThresholdMS int `yaml:"hold_threshold_ms"`

	// EdgeTolerance is the adjacency tolerance for shared-border detection.
	EdgeTolerance float64 `yaml:"edge_tolerance"`
	// OverlapThreshold is the minimum perpendicular overlap for adjacency.
	OverlapThreshold float64 `yaml:"overlap_threshold"`
	// MinWindowDimension is the smallest size a grid drag may shrink a
	// window to.
	MinWindowDimension float64 `yaml:"min_window_dimension"`
	// SnapDetent is the capture radius around the 1/3, 1/2 and 2/3 screen
	// fractions when dragging a shared border.
	SnapDetent float64 `yaml:"snap_detent"`

	// PollHz is the grid session polling rate.
	PollHz int `yaml:"poll_hz"`

	// Modifier is the key whose left/right double-tap triggers zoom.
	Modifier ModifierKey `yaml:"modifier"`
	// TileChordModifier is the X11 modifier prefix for arrow tiling
	// chords, e.g. "mod4" or "mod4-shift".
	TileChordModifier string `yaml:"tile_chord_modifier"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Margin:             8,
		Gap:                8,
		DeadZone:           30,
		SequenceTimeoutMS:  400,
		HoldThresholdMS:    500,
		EdgeTolerance:      6,
		OverlapThreshold:   10,
		MinWindowDimension: 200,
		SnapDetent:         10,
		PollHz:             60,
		Modifier:           ModifierSuper,
		TileChordModifier:  "mod4",
		LogLevel:           "info",
	}
}

// DefaultConfigPath returns ~/.config/swipey/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "swipey", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at path, merging it
// over the defaults. A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Margin < 0 {
		return fmt.Errorf("margin must be >= 0, got %v", c.Margin)
	}
	if c.Gap < 0 {
		return fmt.Errorf("gap must be >= 0, got %v", c.Gap)
	}
	if c.DeadZone <= 0 {
		return fmt.Errorf("dead_zone must be > 0, got %v", c.DeadZone)
	}
	if c.SequenceTimeoutMS <= 0 {
		return fmt.Errorf("sequence_timeout_ms must be > 0, got %d", c.SequenceTimeoutMS)
	}
	if c.HoldThresholdMS <= 0 {
		return fmt.Errorf("hold_threshold_ms must be > 0, got %d", c.HoldThresholdMS)
	}
	if c.EdgeTolerance <= 0 {
		return fmt.Errorf("edge_tolerance must be > 0, got %v", c.EdgeTolerance)
	}
	if c.OverlapThreshold <= 0 {
		return fmt.Errorf("overlap_threshold must be > 0, got %v", c.OverlapThreshold)
	}
	if c.MinWindowDimension <= 0 {
		return fmt.Errorf("min_window_dimension must be > 0, got %v", c.MinWindowDimension)
	}
	if c.SnapDetent <= 0 {
		return fmt.Errorf("snap_detent must be > 0, got %v", c.SnapDetent)
	}
	if c.PollHz < 1 || c.PollHz > 240 {
		return fmt.Errorf("poll_hz must be between 1 and 240, got %d", c.PollHz)
	}
	switch c.Modifier {
	case ModifierSuper, ModifierCtrl, ModifierAlt:
	default:
		return fmt.Errorf("modifier must be one of super, ctrl, alt; got %q", c.Modifier)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}

// SequenceTimeout returns the double-tap sequence timeout as a duration.
func (c *Config) SequenceTimeout() time.Duration {
	return time.Duration(c.SequenceTimeoutMS) * time.Millisecond
}

// HoldThreshold returns the zoom hold threshold as a duration.
func (c *Config) HoldThreshold() time.Duration {
	return time.Duration(c.HoldThresholdMS) * time.Millisecond
}

// PollInterval returns the grid polling cadence.
func (c *Config) PollInterval() time.Duration {
	return time.Second / time.Duration(c.PollHz)
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
