/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package flight provides the flight records shown on the board and the
// timetable that decides which record follows which.
package flight

// RecordID names one of the records known to a timetable.
type RecordID string

// Built-in record identifiers.
const (
	LondonToParis RecordID = "london-to-paris"
	ParisToRome   RecordID = "paris-to-rome"
)

// Record is one immutable snapshot of everything the board displays.
type Record struct {
	ID                    RecordID
	Identifier            string // flight number
	Gate                  string
	Origin                string
	Destination           string
	StatusText            string
	SummaryText           string
	BackgroundKey         string // resolved by the renderer's asset catalog
	ShowsDecorativeEffect bool   // weather overlay
	IsDeparting           bool
}

// Text returns the record's value for a display field.
func (r Record) Text(f Field) string {
	switch f {
	case FieldFlightNumber:
		return r.Identifier
	case FieldGate:
		return r.Gate
	case FieldOrigin:
		return r.Origin
	case FieldDestination:
		return r.Destination
	case FieldStatus:
		return r.StatusText
	case FieldSummary:
		return r.SummaryText
	default:
		return ""
	}
}

// -----------------------------------------------------------------------------
// Display Fields
// -----------------------------------------------------------------------------

// Field identifies a text field on the board.
type Field int

const (
	FieldFlightNumber Field = iota
	FieldGate
	FieldOrigin
	FieldDestination
	FieldStatus
	FieldSummary
)

// Fields lists every display field in board order.
var Fields = []Field{
	FieldFlightNumber,
	FieldGate,
	FieldOrigin,
	FieldDestination,
	FieldStatus,
	FieldSummary,
}

func (f Field) String() string {
	switch f {
	case FieldFlightNumber:
		return "flight"
	case FieldGate:
		return "gate"
	case FieldOrigin:
		return "origin"
	case FieldDestination:
		return "destination"
	case FieldStatus:
		return "status"
	case FieldSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the known display fields.
func (f Field) Valid() bool {
	return f >= FieldFlightNumber && f <= FieldSummary
}

// -----------------------------------------------------------------------------
// Built-in Records
// -----------------------------------------------------------------------------

// Background asset keys used by the built-in records.
const (
	BackgroundSnowy = "bg-snowy"
	BackgroundSunny = "bg-sunny"
)

var (
	// LondonToParisRecord is the seed record shown when the board starts.
	LondonToParisRecord = Record{
		ID:                    LondonToParis,
		Identifier:            "ZY 2014",
		Gate:                  "T1 A33",
		Origin:                "LGW",
		Destination:           "CDG",
		StatusText:            "Boarding",
		SummaryText:           "01 Apr 2015 09:42",
		BackgroundKey:         BackgroundSnowy,
		ShowsDecorativeEffect: true,
		IsDeparting:           true,
	}

	// ParisToRomeRecord follows LondonToParisRecord.
	ParisToRomeRecord = Record{
		ID:                    ParisToRome,
		Identifier:            "AE 1107",
		Gate:                  "045",
		Origin:                "CDG",
		Destination:           "FCO",
		StatusText:            "Delayed",
		SummaryText:           "01 Apr 2015 17:05",
		BackgroundKey:         BackgroundSunny,
		ShowsDecorativeEffect: false,
		IsDeparting:           false,
	}
)
