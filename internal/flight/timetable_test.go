/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimetableAlternates(t *testing.T) {
	tt := DefaultTimetable()

	assert.Equal(t, ParisToRomeRecord, tt.Next(LondonToParisRecord))
	assert.Equal(t, LondonToParisRecord, tt.Next(ParisToRomeRecord))

	for _, r := range []Record{LondonToParisRecord, ParisToRomeRecord} {
		assert.Equal(t, r, tt.Next(tt.Next(r)), "applying Next twice must be the identity for %s", r.ID)
	}
}

func TestDefaultTimetableMatchesDepartingRule(t *testing.T) {
	tt := DefaultTimetable()
	for _, id := range tt.IDs() {
		r, ok := tt.Lookup(id)
		require.True(t, ok)

		want := LondonToParis
		if r.IsDeparting {
			want = ParisToRome
		}
		assert.Equal(t, want, tt.Next(r).ID, id)
	}
}

func TestDefaultTimetableSeed(t *testing.T) {
	assert.Equal(t, LondonToParisRecord, DefaultTimetable().Seed())
}

func TestNewTimetableValidation(t *testing.T) {
	a := Record{ID: "a", Identifier: "A 1"}
	b := Record{ID: "b", Identifier: "B 2"}

	tests := []struct {
		name    string
		records []Record
		next    map[RecordID]RecordID
		wantErr bool
	}{
		{"valid cycle", []Record{a, b}, map[RecordID]RecordID{"a": "b", "b": "a"}, false},
		{"self loop", []Record{a}, map[RecordID]RecordID{"a": "a"}, false},
		{"empty", nil, nil, true},
		{"missing successor", []Record{a, b}, map[RecordID]RecordID{"a": "b"}, true},
		{"unknown successor", []Record{a}, map[RecordID]RecordID{"a": "z"}, true},
		{"unknown source", []Record{a}, map[RecordID]RecordID{"a": "a", "z": "a"}, true},
		{"duplicate", []Record{a, a}, map[RecordID]RecordID{"a": "a"}, true},
		{"missing id", []Record{{Identifier: "X"}}, map[RecordID]RecordID{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt, err := NewTimetable(tc.records, tc.next)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimetable)
				assert.Nil(t, tt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.records), tt.Len())
		})
	}
}

func TestThreeRecordCycle(t *testing.T) {
	a := Record{ID: "a"}
	b := Record{ID: "b"}
	c := Record{ID: "c"}
	tt, err := NewTimetable([]Record{c, b, a}, map[RecordID]RecordID{"a": "b", "b": "c", "c": "a"})
	require.NoError(t, err)

	assert.Equal(t, a, tt.Seed(), "first sorted id seeds a table without LondonToParis")
	assert.Equal(t, a, tt.Next(tt.Next(tt.Next(a))))
	assert.Equal(t, a, tt.Next(Record{ID: "unknown"}))
}

func TestRecordText(t *testing.T) {
	r := ParisToRomeRecord
	assert.Equal(t, "AE 1107", r.Text(FieldFlightNumber))
	assert.Equal(t, "045", r.Text(FieldGate))
	assert.Equal(t, "CDG", r.Text(FieldOrigin))
	assert.Equal(t, "FCO", r.Text(FieldDestination))
	assert.Equal(t, "Delayed", r.Text(FieldStatus))
	assert.Equal(t, "01 Apr 2015 17:05", r.Text(FieldSummary))
	assert.Equal(t, "", r.Text(Field(99)))
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "origin", FieldOrigin.String())
	assert.Equal(t, "unknown", Field(99).String())
	assert.True(t, FieldSummary.Valid())
	assert.False(t, Field(-1).Valid())
}
