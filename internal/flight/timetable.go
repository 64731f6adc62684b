/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package flight

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTimetable is returned when a timetable is not a total
// single-successor mapping over its records.
var ErrInvalidTimetable = errors.New("invalid timetable")

// Timetable is a finite-state table: every record has exactly one successor.
type Timetable struct {
	records map[RecordID]Record
	next    map[RecordID]RecordID
}

// NewTimetable validates and builds a timetable.
func NewTimetable(records []Record, next map[RecordID]RecordID) (*Timetable, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrInvalidTimetable)
	}

	t := &Timetable{
		records: make(map[RecordID]Record, len(records)),
		next:    make(map[RecordID]RecordID, len(records)),
	}
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %q has no id", ErrInvalidTimetable, r.Identifier)
		}
		if _, dup := t.records[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate record %s", ErrInvalidTimetable, r.ID)
		}
		t.records[r.ID] = r
	}

	for id := range t.records {
		succ, ok := next[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no successor", ErrInvalidTimetable, id)
		}
		if _, ok := t.records[succ]; !ok {
			return nil, fmt.Errorf("%w: successor %s of %s is unknown", ErrInvalidTimetable, succ, id)
		}
		t.next[id] = succ
	}
	for id := range next {
		if _, ok := t.records[id]; !ok {
			return nil, fmt.Errorf("%w: transition from unknown record %s", ErrInvalidTimetable, id)
		}
	}

	return t, nil
}

// DefaultTimetable alternates between the two built-in records.
// The table agrees with the IsDeparting rule: a departing record is followed
// by ParisToRome, anything else by LondonToParis.
func DefaultTimetable() *Timetable {
	t, err := NewTimetable(
		[]Record{LondonToParisRecord, ParisToRomeRecord},
		map[RecordID]RecordID{
			LondonToParis: ParisToRome,
			ParisToRome:   LondonToParis,
		},
	)
	if err != nil {
		panic(err) // built-in data
	}
	return t
}

// Next returns the successor of r. Records unknown to the table restart the
// cycle at its seed.
func (t *Timetable) Next(r Record) Record {
	if succ, ok := t.next[r.ID]; ok {
		return t.records[succ]
	}
	return t.Seed()
}

// Lookup returns the record with the given id.
func (t *Timetable) Lookup(id RecordID) (Record, bool) {
	r, ok := t.records[id]
	return r, ok
}

// Seed returns the record a board starts from: LondonToParis when present,
// otherwise the first id in sorted order.
func (t *Timetable) Seed() Record {
	if r, ok := t.records[LondonToParis]; ok {
		return r
	}
	return t.records[t.IDs()[0]]
}

// IDs returns the record ids in sorted order.
func (t *Timetable) IDs() []RecordID {
	ids := make([]RecordID, 0, len(t.records))
	for id := range t.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of records.
func (t *Timetable) Len() int {
	return len(t.records)
}
