package tempo

import (
	"io"

	"github.com/obskit/tempo/internal/leap"
)

// ExtendLeapTable appends newly announced leap seconds to the process-wide
// table from a YAML document of the form
//
//	- mjd: 63249
//	  offset: 38
//
// following an IERS Bulletin C announcement. The table is append-only: call
// this during startup, before conversions begin, since it is read without
// synchronization afterwards.
func ExtendLeapTable(r io.Reader) error {
	return leap.Default().MergeYAML(r)
}

// LeapOffset returns TAI-UTC in seconds at the given UTC MJD, as recorded in
// the process-wide table. Whole seconds from 1972 onward, the published
// fractional drift values before that.
func LeapOffset(utcMJD float64) float64 {
	return leap.Default().OffsetAt(utcMJD)
}
