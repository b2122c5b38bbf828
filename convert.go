package tempo

import (
	"math"

	"github.com/obskit/tempo/internal/instant"
	"github.com/obskit/tempo/internal/leap"
)

const (
	epochMJD   = 40587.0 // MJD of 1970-01-01
	secsPerDay = 86400.0
	jdMinusMJD = 2400000.5
	mjdJ2000   = 51544.5 // MJD of J2000.0
	julianYear = 365.25  // days per Julian year

	// TT leads TAI by exactly 32.184s.
	ttMinusTAINanos int64 = 32_184_000_000

	// Epoch-seconds of 1972-01-01T00:00:00 UTC. From here on TAI-UTC is a
	// whole number of seconds and applied offsets are rounded accordingly.
	integerLeapSeconds = 63072000.0
)

// mjdOf approximates the instant's MJD on its own scale. Good to ~1e-11 day
// for civil-era instants, far below the leap table's day granularity.
func mjdOf(i instant.Instant) float64 {
	return epochMJD + i.Float()/secsPerDay
}

// taiToUTC maps a canonical TAI instant to the UTC instant of the same
// moment. The offset depends on the UTC reading being computed, so it is
// looked up once at the TAI reading and once more at the resulting
// approximate UTC reading. The second lookup is exact to well under a
// nanosecond in the drift era and settles which step applies at integer
// leap boundaries.
func taiToUTC(i instant.Instant) instant.Instant {
	tbl := leap.Default()
	off := tbl.OffsetAt(mjdOf(i))
	approx := i.AddSeconds(-off)
	return i.AddSeconds(-tbl.OffsetAt(mjdOf(approx)))
}

// utcToTAI maps a UTC instant to canonical TAI, looking the offset up at the
// UTC instant directly. After 1972 the offset is forced to a whole second,
// preserving the historical integer-leap convention; before that the
// published fractional value is kept.
func utcToTAI(u instant.Instant) instant.Instant {
	off := leap.Default().OffsetAt(mjdOf(u))
	if u.Float() > integerLeapSeconds {
		off = math.Round(off)
	}
	return u.AddSeconds(off)
}

// inScale re-expresses a canonical TAI instant on the requested scale.
func inScale(i instant.Instant, scale Timescale) instant.Instant {
	switch scale {
	case UTC:
		return taiToUTC(i)
	case TT:
		return i.AddNanos(ttMinusTAINanos)
	default:
		return i
	}
}

// toTAI interprets an instant expressed on the given scale as canonical TAI.
func toTAI(i instant.Instant, scale Timescale) instant.Instant {
	switch scale {
	case UTC:
		return utcToTAI(i)
	case TT:
		return i.AddNanos(-ttMinusTAINanos)
	default:
		return i
	}
}

// toDateSystem renders a scale-local instant as a floating date value.
func toDateSystem(i instant.Instant, system DateSystem) float64 {
	mjd := mjdOf(i)
	switch system {
	case JD:
		return mjd + jdMinusMJD
	case Epoch:
		return 2000.0 + (mjd-mjdJ2000)/julianYear
	default:
		return mjd
	}
}

// fromDateSystem builds a scale-local instant from a floating date value.
// Whole days are handled as exact integers so only the day fraction passes
// through floating-point scaling.
func fromDateSystem(value float64, system DateSystem) instant.Instant {
	var mjd float64
	switch system {
	case JD:
		mjd = value - jdMinusMJD
	case Epoch:
		mjd = mjdJ2000 + (value-2000.0)*julianYear
	default:
		mjd = value
	}
	days := math.Floor(mjd)
	base := instant.FromSeconds((int64(days) - int64(epochMJD)) * int64(secsPerDay))
	return base.AddSeconds((mjd - days) * secsPerDay)
}
