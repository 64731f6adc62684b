// Package ui defines the host interface for the flight board front ends.
package ui

import "github.com/ijuttt/flightboard/internal/app"

// UI abstracts the terminal UI implementation, so the board can be hosted by
// Bubble Tea or gocui without changing app logic.
type UI interface {
	// Run starts the board and blocks in the UI main loop until the user
	// quits.
	Run(state *app.State) error
	// Close releases UI resources.
	Close()
}
