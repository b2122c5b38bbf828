// Package tempo represents astronomical instants at nanosecond precision
// and converts them among the TAI, UTC and TT timescales and the Julian
// Date, Modified Julian Date and Julian-epoch date systems.
//
// A DateTime is an immutable value holding one instant as whole TAI seconds
// since 1970-01-01T00:00:00 TAI plus a nanosecond remainder, so conversions
// are leap-second correct and exact beyond what double-based date arithmetic
// can carry. Leap seconds follow the published USNO/IERS history: whole
// seconds from 1972 onward, the fractional drift formulas before that.
//
//	dt, err := tempo.Parse("2009-04-02T07:26:39.314159265Z")
//	ns, err := dt.Nsecs(tempo.TAI)
//	mjd, err := dt.Get(tempo.MJD, tempo.UTC)
//
// All values are immutable and safe for concurrent use. The only non-
// deterministic operation is Now, a single synchronous clock read.
package tempo
