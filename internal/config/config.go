/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package config provides configuration constants, path resolution and
// settings loading for flightboard.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ijuttt/flightboard/internal/settings"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "flightboard"

	// ConfigFileName is the optional configuration file name.
	ConfigFileName = "config.toml"

	// LogFileName is the log file used while a TUI owns the terminal.
	LogFileName = "flightboard.log"
)

// -----------------------------------------------------------------------------
// Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultInterval is the delay between board changes.
	DefaultInterval = 3 * time.Second

	// DefaultFPS is how often the front ends redraw and advance the clock.
	DefaultFPS = 30

	// MaxFPS caps the redraw rate.
	MaxFPS = 120

	// DefaultUI is the front end used when none is selected and none is
	// remembered.
	DefaultUI = "bubbletea"
)

// ValidUI reports whether name is a known front end.
func ValidUI(name string) bool {
	switch name {
	case "bubbletea", "gocui":
		return true
	}
	return false
}

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	EnvInterval = "FLIGHTBOARD_INTERVAL"
	EnvFPS      = "FLIGHTBOARD_FPS"
	EnvNATSURL  = "FLIGHTBOARD_NATS_URL"
	EnvUI       = "FLIGHTBOARD_UI"
	EnvLogLevel = "FLIGHTBOARD_LOG_LEVEL"
	EnvLogFile  = "FLIGHTBOARD_LOG_FILE"

	// EnvDataDir overrides the default data directory.
	EnvDataDir = "FLIGHTBOARD_DATA_DIR"

	// EnvXDGDataHome is the XDG data home environment variable.
	EnvXDGDataHome = "XDG_DATA_HOME"

	// EnvXDGConfigHome is the XDG config home environment variable.
	EnvXDGConfigHome = "XDG_CONFIG_HOME"

	// EnvXDGStateHome is the XDG state home environment variable.
	EnvXDGStateHome = "XDG_STATE_HOME"
)

// Config holds the resolved settings for one run.
type Config struct {
	Interval time.Duration `toml:"-"`
	FPS      int           `toml:"fps"`
	UI       string        `toml:"ui"` // empty leaves the choice to the host
	NATSURL  string        `toml:"nats_url"`
	Seed     string        `toml:"seed"`
	LogLevel string        `toml:"log_level"`
	LogFile  string        `toml:"log_file"`
	DataDir  string        `toml:"data_dir"`

	// IntervalText is the interval as written in the config file ("3s").
	IntervalText string `toml:"interval"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interval: DefaultInterval,
		FPS:      DefaultFPS,
		LogLevel: "info",
		DataDir:  GetDataPaths()[0],
	}
}

// Load resolves the configuration: defaults, then the config file (if any),
// then environment variables.
func Load() (Config, error) {
	return Resolve(nil)
}

// Resolve is Load with a final layer of overrides, typically command-line
// flags, applied before validation.
func Resolve(override func(*Config)) (Config, error) {
	c := Default()

	if path, ok := FindConfigFile(); ok {
		if err := c.mergeFile(path); err != nil {
			return c, err
		}
	}
	if err := c.mergeEnv(); err != nil {
		return c, err
	}
	if override != nil {
		override(&c)
	}
	return c, c.Validate()
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv(EnvInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvInterval, err)
		}
		c.Interval = d
	}
	if v := os.Getenv(EnvFPS); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		c.FPS = n
	}
	c.NATSURL = envOrDefault(EnvNATSURL, c.NATSURL)
	c.UI = envOrDefault(EnvUI, c.UI)
	c.LogLevel = envOrDefault(EnvLogLevel, c.LogLevel)
	c.LogFile = envOrDefault(EnvLogFile, c.LogFile)
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, c.FPS)
	}
	if c.UI != "" && !ValidUI(c.UI) {
		return fmt.Errorf("unknown ui %q (must be bubbletea or gocui)", c.UI)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// FrameInterval returns the redraw period for FPS.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// SettingsPath returns the settings file inside the data directory.
func (c Config) SettingsPath() string {
	return filepath.Join(c.DataDir, settings.FileName)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// -----------------------------------------------------------------------------
// Path Resolution
// -----------------------------------------------------------------------------

// GetDataPaths returns an ordered list of candidate data directories.
// Priority order:
//  1. $FLIGHTBOARD_DATA_DIR (if set)
//  2. $XDG_DATA_HOME/flightboard (or ~/.local/share/flightboard)
//  3. ./.flightboard (last resort)
func GetDataPaths() []string {
	var paths []string

	// Priority 1: Environment variable override
	if envDir := os.Getenv(EnvDataDir); envDir != "" {
		paths = append(paths, envDir)
	}

	// Priority 2: XDG Data Home
	if dir := xdgDir(EnvXDGDataHome, ".local", "share"); dir != "" {
		paths = append(paths, filepath.Join(dir, AppName))
	}

	// Priority 3: working directory
	paths = append(paths, "."+AppName)

	return paths
}

// DefaultLogPath returns $XDG_STATE_HOME/flightboard/flightboard.log, or an
// empty string when no home directory can be found.
func DefaultLogPath() string {
	dir := xdgDir(EnvXDGStateHome, ".local", "state")
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, AppName, LogFileName)
}

// xdgDir returns $env, falling back to ~/<fallback...>.
func xdgDir(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}
