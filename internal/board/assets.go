/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package board

import (
	"errors"
	"fmt"

	"github.com/ijuttt/flightboard/internal/flight"
)

var (
	// ErrAssetNotFound is returned when a background key has no scene.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrUnknownField is returned when committing text to a field the board
	// does not have.
	ErrUnknownField = errors.New("unknown field")
)

// Scene is a background asset: a few rows of sky art and a tint.
type Scene struct {
	Key   string
	Title string
	Sky   []string
	Tint  string // ANSI 256 color code
}

// Catalog resolves background keys to scenes.
type Catalog map[string]Scene

// DefaultCatalog returns the scenes used by the built-in records.
func DefaultCatalog() Catalog {
	return Catalog{
		flight.BackgroundSnowy: {
			Key:   flight.BackgroundSnowy,
			Title: "Snow",
			Sky: []string{
				"   .-~~~-.        .-~~-.     ",
				" .(       )-.  .-(      ).   ",
				"(___________)  (_________)   ",
			},
			Tint: "153",
		},
		flight.BackgroundSunny: {
			Key:   flight.BackgroundSunny,
			Title: "Clear",
			Sky: []string{
				"      \\  |  /                ",
				"    -- (   ) --     .-~~-.   ",
				"      /  |  \\      (______)  ",
			},
			Tint: "220",
		},
	}
}

// Resolve returns the scene for key.
func (c Catalog) Resolve(key string) (Scene, error) {
	s, ok := c[key]
	if !ok {
		return Scene{}, fmt.Errorf("background %q: %w", key, ErrAssetNotFound)
	}
	return s, nil
}
