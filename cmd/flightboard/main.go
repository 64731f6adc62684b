// flightboard is a terminal departures board that alternates between flights
// with animated transitions.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/config"
	"github.com/ijuttt/flightboard/internal/events"
	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/sequencer"
	"github.com/ijuttt/flightboard/internal/settings"
)

// flagValues holds the persistent flags. Only flags the user set override
// the loaded configuration.
type flagValues struct {
	ui       string
	interval time.Duration
	fps      int
	seed     string
	natsURL  string
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Animated terminal departures board",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, &fv)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&fv.ui, "ui", "", "terminal front end: bubbletea or gocui (default: last used, else "+config.DefaultUI+")")
	pf.DurationVar(&fv.interval, "interval", config.DefaultInterval, "time between flight changes")
	pf.IntVar(&fv.fps, "fps", config.DefaultFPS, "frames per second")
	pf.StringVar(&fv.seed, "seed", "", "record shown first ("+joinIDs()+")")
	pf.StringVar(&fv.natsURL, "nats-url", "", "mirror board commits to this NATS server")
	pf.StringVar(&fv.logFile, "log-file", "", "log file for TUI modes (default $XDG_STATE_HOME/flightboard/flightboard.log)")
	pf.StringVar(&fv.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(&fv))
	root.AddCommand(newHeadlessCmd(&fv))
	root.AddCommand(newRomanCmd())
	root.AddCommand(newSettingsCmd(&fv))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// -----------------------------------------------------------------------------
// Wiring
// -----------------------------------------------------------------------------

// loadConfig resolves .env, the config file, the environment and the flags
// the user set, in increasing order of precedence.
func loadConfig(cmd *cobra.Command, fv *flagValues) (config.Config, error) {
	if err := config.LoadDotenv(); err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	c, err := config.Resolve(func(c *config.Config) {
		if f.Changed("ui") {
			c.UI = fv.ui
		}
		if f.Changed("interval") {
			c.Interval = fv.interval
		}
		if f.Changed("fps") {
			c.FPS = fv.fps
		}
		if f.Changed("seed") {
			c.Seed = fv.seed
		}
		if f.Changed("nats-url") {
			c.NATSURL = fv.natsURL
		}
		if f.Changed("log-file") {
			c.LogFile = fv.logFile
		}
		if f.Changed("log-level") {
			c.LogLevel = fv.logLevel
		}
	})
	if err != nil {
		return c, err
	}
	if c.Seed != "" {
		if _, ok := flight.DefaultTimetable().Lookup(flight.RecordID(c.Seed)); !ok {
			return c, fmt.Errorf("unknown seed %q (must be one of %s)", c.Seed, joinIDs())
		}
	}
	return c, nil
}

// newLogger builds a text logger at the configured level.
func newLogger(c config.Config, w io.Writer) *slog.Logger {
	level, _ := config.ParseLevel(c.LogLevel) // validated by loadConfig
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openLogFile opens the TUI log file. Without a usable path, logs are
// discarded.
func openLogFile(c config.Config) (io.WriteCloser, error) {
	path := c.LogFile
	if path == "" {
		path = config.DefaultLogPath()
	}
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// newPublisher builds the destinations board commits are mirrored to:
// extra, plus NATS when a URL is configured. With none it returns a
// NoopPublisher.
func newPublisher(c config.Config, log *slog.Logger, extra ...events.Publisher) (events.Publisher, error) {
	pubs := events.Fanout(extra)
	if c.NATSURL != "" {
		nc, err := events.NewNATSPublisher(c.NATSURL)
		if err != nil {
			_ = pubs.Close()
			return nil, err
		}
		pubs = append(pubs, nc)
		log.Info("mirroring board to NATS", "url", c.NATSURL)
	}
	if len(pubs) == 0 {
		return events.NoopPublisher{}, nil
	}
	return pubs, nil
}

// newState wires settings, publishers and the board together. The returned
// cleanup closes the publishers.
func newState(c config.Config, store settings.Store, log *slog.Logger, extra ...events.Publisher) (*app.State, func(), error) {
	pub, err := newPublisher(c, log, extra...)
	if err != nil {
		return nil, nil, err
	}
	id, err := events.NewDisplayID()
	if err != nil {
		_ = pub.Close()
		return nil, nil, err
	}
	log.Info("display id assigned", "display", id)

	state := app.NewState(app.Options{
		Interval: c.Interval,
		Seed:     flight.RecordID(c.Seed),
		Store:    store,
		Logger:   log,
		Wrap: func(r sequencer.Renderer) sequencer.Renderer {
			return events.NewMirror(r, pub, id, log)
		},
	})
	cleanup := func() {
		if err := pub.Close(); err != nil {
			log.Warn("closing publishers", "error", err)
		}
	}
	return state, cleanup, nil
}

// frontEnd picks the terminal UI: the configured one, else the one used
// last, else the default.
func frontEnd(c config.Config, store settings.Store) string {
	if c.UI != "" {
		return c.UI
	}
	if last := settings.String(store, settings.KeyUI, ""); config.ValidUI(last) {
		return last
	}
	return config.DefaultUI
}

func joinIDs() string {
	ids := flight.DefaultTimetable().IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
