package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/events"
	"github.com/ijuttt/flightboard/internal/settings"
	"github.com/ijuttt/flightboard/internal/ui/render"
)

func newHeadlessCmd(fv *flagValues) *cobra.Command {
	var cycles int
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the board without a terminal UI, logging every commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, fv)
			if err != nil {
				return err
			}
			log := newLogger(c, cmd.ErrOrStderr())

			store, err := settings.OpenFile(c.SettingsPath())
			if err != nil {
				return err
			}
			state, cleanup, err := newState(c, store, log, events.NewLogPublisher(log))
			if err != nil {
				return err
			}
			defer cleanup()

			if err := state.Start(); err != nil {
				return err
			}
			defer state.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Board(state.Snapshot().Frame, true, false))

			ticker := time.NewTicker(c.FrameInterval())
			defer ticker.Stop()

			last := time.Now()
			seen := 0
			for {
				select {
				case <-ctx.Done():
					log.Info("headless board interrupted", "cycles", seen)
					return nil
				case now := <-ticker.C:
					state.TickFrame(now.Sub(last))
					last = now

					v := state.Snapshot()
					if v.Cycles != seen {
						seen = v.Cycles
						fmt.Fprintln(out, render.Status(v))
					}
					if done(v, cycles) {
						fmt.Fprint(out, render.Board(v.Frame, true, false))
						return nil
					}
				}
			}
		},
	}
	cmd.Flags().IntVar(&cycles, "cycles", 0, "stop after this many cycles (0 runs until interrupted)")
	return cmd
}

// done reports whether the requested number of cycles has started.
func done(v app.View, cycles int) bool {
	return cycles > 0 && v.Cycles >= cycles
}
