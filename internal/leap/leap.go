// Package leap holds the TAI-UTC offset history and its lookup.
//
// The offset is a step function of UTC time from 1972 onward, when leap
// seconds became whole-second insertions. Between 1961 and 1972 the offset
// followed published drift formulas instead, so each table entry carries an
// optional linear drift term evaluated at the query MJD.
package leap

import (
	"fmt"
	"sort"
)

// Entry is one segment of the TAI-UTC offset history, effective from MJD
// (UTC) until the next entry takes over.
type Entry struct {
	// MJD is the UTC Modified Julian Date at which the entry takes effect.
	MJD float64 `yaml:"mjd" json:"mjd"`
	// Offset is TAI-UTC in seconds at the reference day DriftMJD.
	Offset float64 `yaml:"offset" json:"offset"`
	// DriftMJD and DriftRate describe the 1961-1972 rate terms: the
	// effective offset grows by DriftRate seconds per day away from
	// DriftMJD. Whole-second entries carry zero drift.
	DriftMJD  float64 `yaml:"-" json:"drift_mjd"`
	DriftRate float64 `yaml:"-" json:"drift_rate"`
}

// OffsetAt evaluates the entry's offset formula at the given UTC MJD.
func (e Entry) OffsetAt(mjd float64) float64 {
	if e.DriftRate == 0 {
		return e.Offset
	}
	return e.Offset + (mjd-e.DriftMJD)*e.DriftRate
}

// Table is an ordered TAI-UTC offset history. Tables are append-only:
// entries are added at build or startup time and never removed or
// reordered, so a populated table is safe for unsynchronized concurrent
// reads.
type Table struct {
	entries []Entry
}

var std = &Table{entries: history}

// Default returns the process-wide table compiled from the published
// USNO/IERS history (1961-01-01 through the 2017-01-01 leap second).
// Callers must not append to it after conversions have started.
func Default() *Table { return std }

// OffsetAt returns TAI-UTC in seconds at the given UTC MJD: the greatest
// entry effective at or before the query, evaluated at the query. Queries
// before the first entry extrapolate its drift formula backward, matching
// the historical practice of a smoothly varying pre-1961 relationship.
func (t *Table) OffsetAt(mjd float64) float64 {
	n := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].MJD > mjd })
	if n == 0 {
		return t.entries[0].OffsetAt(mjd)
	}
	return t.entries[n-1].OffsetAt(mjd)
}

// Append adds a newly announced leap second. The entry must take effect
// after everything already in the table and may not lower the offset.
func (t *Table) Append(e Entry) error {
	if len(t.entries) > 0 {
		last := t.entries[len(t.entries)-1]
		if e.MJD <= last.MJD {
			return fmt.Errorf("leap: entry at MJD %v does not follow MJD %v", e.MJD, last.MJD)
		}
		if e.Offset < last.OffsetAt(e.MJD) {
			return fmt.Errorf("leap: offset %vs at MJD %v decreases the TAI-UTC history", e.Offset, e.MJD)
		}
	}
	t.entries = append(t.entries, e)
	return nil
}

// Clone returns an independent copy, for callers that extend the history
// without touching the shared default table.
func (t *Table) Clone() *Table {
	return &Table{entries: append([]Entry(nil), t.entries...)}
}

// Entries returns a copy of the history in effective order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }
