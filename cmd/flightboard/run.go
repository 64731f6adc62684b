package main

import (
	"github.com/spf13/cobra"

	"github.com/ijuttt/flightboard/internal/settings"
	"github.com/ijuttt/flightboard/internal/ui"
	"github.com/ijuttt/flightboard/internal/ui/bubbletea"
	"github.com/ijuttt/flightboard/internal/ui/gocui"
)

func newRunCmd(fv *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Show the board in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, fv)
		},
	}
}

// runTUI hosts the board in a terminal UI. The TUI owns the terminal, so
// logs go to a file.
func runTUI(cmd *cobra.Command, fv *flagValues) error {
	c, err := loadConfig(cmd, fv)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(c)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := newLogger(c, logFile)

	store, err := settings.OpenFile(c.SettingsPath())
	if err != nil {
		return err
	}
	name := frontEnd(c, store)
	if err := store.Set(name, settings.KeyUI); err != nil {
		log.Warn("saving front end", "ui", name, "error", err)
	}

	state, cleanup, err := newState(c, store, log)
	if err != nil {
		return err
	}
	defer cleanup()

	var host ui.UI
	switch name {
	case "gocui":
		g, err := gocui.New(c.FrameInterval())
		if err != nil {
			return err
		}
		host = g
	default:
		host = bubbletea.New(c.FrameInterval())
	}
	defer host.Close()

	log.Info("board starting", "ui", name, "interval", c.Interval, "fps", c.FPS)
	return host.Run(state)
}
