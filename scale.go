package tempo

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Timescale identifies the physical clock a value is measured against.
//
// The integer values are stable interchange codes for callers that cannot
// express the enum natively; never renumber them.
type Timescale int

const (
	// TAI is International Atomic Time: continuous, no leap seconds.
	TAI Timescale = iota
	// UTC is Coordinated Universal Time, adjusted by leap seconds.
	UTC
	// TT is Terrestrial Time: TAI + 32.184s, used in ephemerides.
	TT
)

func (s Timescale) String() string {
	switch s {
	case TAI:
		return "TAI"
	case UTC:
		return "UTC"
	case TT:
		return "TT"
	}
	return fmt.Sprintf("Timescale(%d)", int(s))
}

func (s Timescale) valid() bool {
	return s >= TAI && s <= TT
}

// TimescaleOf coerces a loosely typed value into a Timescale. It accepts a
// Timescale, a scale name in any case ("tai", "utc", "tt"), or any numeric
// type carrying one of the codes 0..2. Anything else fails with
// INVALID_ENUM_VALUE.
func TimescaleOf(v any) (Timescale, error) {
	switch x := v.(type) {
	case Timescale:
		if x.valid() {
			return x, nil
		}
	case string:
		switch strings.ToUpper(strings.TrimSpace(x)) {
		case "TAI":
			return TAI, nil
		case "UTC":
			return UTC, nil
		case "TT":
			return TT, nil
		}
	case bool, nil:
		// cast would coerce these to 0 or 1; they are never valid codes.
	case float32:
		return TimescaleOf(float64(x))
	case float64:
		// Reject fractional codes rather than truncating them.
		if x == math.Trunc(x) {
			if s := Timescale(int(x)); s.valid() {
				return s, nil
			}
		}
	default:
		if n, err := cast.ToIntE(v); err == nil {
			if s := Timescale(n); s.valid() {
				return s, nil
			}
		}
	}
	return TAI, newInvalidEnumError("timescale", v)
}

// DateSystem identifies the floating-point date representation requested on
// read. Like Timescale, the integer values are stable interchange codes.
type DateSystem int

const (
	// JD is the Julian Date day count.
	JD DateSystem = iota
	// MJD is the Modified Julian Date: JD - 2400000.5.
	MJD
	// Epoch is the Julian epoch: fractional 365.25-day years from J2000.0.
	Epoch
)

func (d DateSystem) String() string {
	switch d {
	case JD:
		return "JD"
	case MJD:
		return "MJD"
	case Epoch:
		return "EPOCH"
	}
	return fmt.Sprintf("DateSystem(%d)", int(d))
}

func (d DateSystem) valid() bool {
	return d >= JD && d <= Epoch
}

// DateSystemOf coerces a loosely typed value into a DateSystem, mirroring
// TimescaleOf: a DateSystem, a name ("jd", "mjd", "epoch"), or a numeric
// code 0..2.
func DateSystemOf(v any) (DateSystem, error) {
	switch x := v.(type) {
	case DateSystem:
		if x.valid() {
			return x, nil
		}
	case string:
		switch strings.ToUpper(strings.TrimSpace(x)) {
		case "JD":
			return JD, nil
		case "MJD":
			return MJD, nil
		case "EPOCH":
			return Epoch, nil
		}
	case bool, nil:
	case float32:
		return DateSystemOf(float64(x))
	case float64:
		if x == math.Trunc(x) {
			if d := DateSystem(int(x)); d.valid() {
				return d, nil
			}
		}
	default:
		if n, err := cast.ToIntE(v); err == nil {
			if d := DateSystem(n); d.valid() {
				return d, nil
			}
		}
	}
	return JD, newInvalidEnumError("date system", v)
}
