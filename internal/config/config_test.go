package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG directory and the working directory at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvXDGConfigHome, filepath.Join(dir, "config"))
	t.Setenv(EnvXDGDataHome, filepath.Join(dir, "data"))
	t.Setenv(EnvXDGStateHome, filepath.Join(dir, "state"))
	for _, k := range []string{EnvInterval, EnvFPS, EnvNATSURL, EnvUI, EnvLogLevel, EnvLogFile, EnvDataDir} {
		t.Setenv(k, "")
	}
	chdir(t, dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, "config", AppName, ConfigFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultInterval, c.Interval)
	assert.Equal(t, DefaultFPS, c.FPS)
	assert.Empty(t, c.UI, "no front end chosen")
	assert.Equal(t, filepath.Join(dir, "data", AppName), c.DataDir)
	assert.Equal(t, filepath.Join(dir, "data", AppName, "settings.toml"), c.SettingsPath())
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
interval = "5s"
fps = 10
ui = "gocui"
seed = "paris-to-rome"
nats_url = "nats://file:4222"
`)
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.Interval)
	assert.Equal(t, 10, c.FPS)
	assert.Equal(t, "gocui", c.UI)
	assert.Equal(t, "paris-to-rome", c.Seed)
	assert.Equal(t, 100*time.Millisecond, c.FrameInterval())

	t.Setenv(EnvInterval, "2s")
	t.Setenv(EnvNATSURL, "nats://env:4222")
	c, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, c.Interval, "env wins over file")
	assert.Equal(t, "nats://env:4222", c.NATSURL)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `colour = "red"`)
	_, err := Load()
	assert.ErrorContains(t, err, "unknown key")
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad interval", map[string]string{EnvInterval: "soon"}},
		{"zero interval", map[string]string{EnvInterval: "0s"}},
		{"bad fps", map[string]string{EnvFPS: "fast"}},
		{"fps too high", map[string]string{EnvFPS: "500"}},
		{"bad ui", map[string]string{EnvUI: "qt"}},
		{"bad level", map[string]string{EnvLogLevel: "loud"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetDataPaths(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvDataDir, "/srv/board")

	paths := GetDataPaths()
	require.Len(t, paths, 3)
	assert.Equal(t, "/srv/board", paths[0])
	assert.Equal(t, filepath.Join(dir, "data", AppName), paths[1])
	assert.Equal(t, "."+AppName, paths[2])
	assert.Equal(t, filepath.Join(dir, "state", AppName, LogFileName), DefaultLogPath())
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, LoadDotenv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FLIGHTBOARD_TEST_DOTENV=from-file\n"), 0o644))
	t.Setenv("FLIGHTBOARD_TEST_DOTENV", "")
	os.Unsetenv("FLIGHTBOARD_TEST_DOTENV")

	require.NoError(t, LoadDotenv())
	assert.Equal(t, "from-file", os.Getenv("FLIGHTBOARD_TEST_DOTENV"))
}

func TestResolveOverridesBeforeValidation(t *testing.T) {
	isolate(t)
	t.Setenv(EnvUI, "qt")

	_, err := Load()
	require.Error(t, err)

	c, err := Resolve(func(c *Config) { c.UI = "gocui" })
	require.NoError(t, err)
	assert.Equal(t, "gocui", c.UI)

	_, err = Resolve(func(c *Config) { c.FPS = 0 })
	assert.Error(t, err, "overrides are validated too")
}

func TestValidUI(t *testing.T) {
	assert.True(t, ValidUI("bubbletea"))
	assert.True(t, ValidUI("gocui"))
	assert.False(t, ValidUI(""))
	assert.False(t, ValidUI("qt"))
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
