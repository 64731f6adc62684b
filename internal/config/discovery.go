package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// -----------------------------------------------------------------------------
// Config File Discovery
// -----------------------------------------------------------------------------

// GetConfigPaths returns the ordered list of config file candidates.
//  1. ./flightboard.toml
//  2. $XDG_CONFIG_HOME/flightboard/config.toml (or ~/.config/flightboard/config.toml)
func GetConfigPaths() []string {
	paths := []string{AppName + ".toml"}
	if dir := xdgDir(EnvXDGConfigHome, ".config"); dir != "" {
		paths = append(paths, filepath.Join(dir, AppName, ConfigFileName))
	}
	return paths
}

// FindConfigFile returns the first existing config file candidate.
func FindConfigFile() (string, bool) {
	for _, p := range GetConfigPaths() {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		return p, true
	}
	return "", false
}

// mergeFile overlays values set in the TOML file at path.
func (c *Config) mergeFile(path string) error {
	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	if file.IntervalText != "" {
		d, err := time.ParseDuration(file.IntervalText)
		if err != nil {
			return fmt.Errorf("%s: interval: %w", path, err)
		}
		c.Interval = d
	}
	if md.IsDefined("fps") {
		c.FPS = file.FPS
	}
	if file.UI != "" {
		c.UI = file.UI
	}
	if file.NATSURL != "" {
		c.NATSURL = file.NATSURL
	}
	if file.Seed != "" {
		c.Seed = file.Seed
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.LogFile != "" {
		c.LogFile = file.LogFile
	}
	if file.DataDir != "" {
		c.DataDir = file.DataDir
	}
	return nil
}

// -----------------------------------------------------------------------------
// Dotenv
// -----------------------------------------------------------------------------

// LoadDotenv loads variables from .env files without
// overriding variables already set. Missing files are ignored.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}
