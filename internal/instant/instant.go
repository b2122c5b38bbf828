// Package instant provides the exact seconds-plus-nanoseconds value that
// underlies every tempo.DateTime.
//
// An Instant never passes through floating point on construction or
// comparison, so arithmetic on it is lossless at nanosecond resolution for
// civil-time magnitudes.
package instant

import "math"

const nanosPerSecond = 1_000_000_000

// Instant is a point on a uniform timescale: whole seconds since the scale's
// 1970-01-01T00:00:00 epoch plus a nanosecond remainder.
//
// The remainder is always in [0, 1e9), so instants before the epoch use
// floor semantics: (sec, nsec) denotes sec + nsec/1e9 exactly. Instants are
// immutable values and comparable with ==.
type Instant struct {
	sec  int64
	nsec uint32
}

// New builds an Instant from whole seconds and a nanosecond count,
// normalizing nsec into [0, 1e9) with carry into the seconds field.
func New(sec, nsec int64) Instant {
	sec += nsec / nanosPerSecond
	nsec %= nanosPerSecond
	if nsec < 0 {
		sec--
		nsec += nanosPerSecond
	}
	return Instant{sec: sec, nsec: uint32(nsec)}
}

// FromNanos builds an Instant from integer epoch-nanoseconds.
func FromNanos(ns int64) Instant {
	return New(0, ns)
}

// FromSeconds builds an Instant from integer epoch-seconds.
func FromSeconds(sec int64) Instant {
	return Instant{sec: sec}
}

// Parts returns the whole-second and nanosecond components.
func (i Instant) Parts() (sec int64, nsec uint32) {
	return i.sec, i.nsec
}

// Nanos returns the instant as integer epoch-nanoseconds. ok is false when
// the value does not fit in an int64, i.e. outside roughly the years
// 1678..2262.
func (i Instant) Nanos() (ns int64, ok bool) {
	if i.sec > math.MaxInt64/nanosPerSecond-1 || i.sec < math.MinInt64/nanosPerSecond+1 {
		return 0, false
	}
	return i.sec*nanosPerSecond + int64(i.nsec), true
}

// Float returns the instant as floating seconds. Precision degrades for
// magnitudes beyond ~2^53 nanoseconds; use Nanos for exact interchange.
func (i Instant) Float() float64 {
	return float64(i.sec) + float64(i.nsec)/nanosPerSecond
}

// AddSeconds returns the instant shifted by delta seconds. The fractional
// part of delta is rounded to the nearest nanosecond before carrying into
// the seconds field, so the result stays exact at nanosecond resolution.
func (i Instant) AddSeconds(delta float64) Instant {
	whole := math.Floor(delta)
	frac := int64(math.Round((delta - whole) * nanosPerSecond))
	return New(i.sec+int64(whole), int64(i.nsec)+frac)
}

// AddNanos returns the instant shifted by an exact nanosecond count.
func (i Instant) AddNanos(ns int64) Instant {
	return New(i.sec, int64(i.nsec)+ns)
}

// Sub returns i - o in seconds, exact to the nanosecond for civil-time
// spans.
func (i Instant) Sub(o Instant) float64 {
	return float64(i.sec-o.sec) + (float64(i.nsec)-float64(o.nsec))/nanosPerSecond
}

// Compare orders two instants: -1 when i is earlier than o, 0 when equal,
// +1 when later. Comparison is exact integer comparison, never tolerance
// based.
func (i Instant) Compare(o Instant) int {
	switch {
	case i.sec < o.sec:
		return -1
	case i.sec > o.sec:
		return 1
	case i.nsec < o.nsec:
		return -1
	case i.nsec > o.nsec:
		return 1
	}
	return 0
}

// Before reports whether i is earlier than o.
func (i Instant) Before(o Instant) bool { return i.Compare(o) < 0 }

// After reports whether i is later than o.
func (i Instant) After(o Instant) bool { return i.Compare(o) > 0 }
