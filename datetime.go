package tempo

import (
	"fmt"
	"time"

	"github.com/obskit/tempo/internal/instant"
)

// DateTime is an immutable astronomical instant, held internally as whole
// TAI seconds since 1970-01-01T00:00:00 TAI plus a nanosecond remainder.
//
// The zero value is nanosecond 0 of the TAI epoch. Note that this is not
// the same moment as 1970-01-01T00:00:00 UTC: at the epoch TAI led UTC by
// about 8.000082s under the 1968 drift formula.
//
// DateTime values are comparable with ==; equality is exact comparison of
// the canonical TAI representation, independent of the scale a value was
// constructed on.
type DateTime struct {
	i instant.Instant
}

// New returns the instant at nanosecond 0 of the TAI epoch.
func New() DateTime { return DateTime{} }

// FromNanos builds a DateTime from integer epoch-nanoseconds counted on the
// given scale. UTC counts are the usual Unix-style count, which skips leap
// seconds; TAI and TT counts are elapsed nanoseconds on those clocks.
func FromNanos(nsecs int64, scale Timescale) (DateTime, error) {
	scale, err := TimescaleOf(scale)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{i: toTAI(instant.FromNanos(nsecs), scale)}, nil
}

// FromDate builds a DateTime from a floating date value in the given date
// system, read on the given scale.
func FromDate(value float64, system DateSystem, scale Timescale) (DateTime, error) {
	system, err := DateSystemOf(system)
	if err != nil {
		return DateTime{}, err
	}
	scale, err = TimescaleOf(scale)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{i: toTAI(fromDateSystem(value, system), scale)}, nil
}

// FromCalendar builds a DateTime from six calendar fields, reading the
// civil date they spell on the given scale. Fields outside their calendar
// ranges fail with VALUE_OUT_OF_RANGE.
func FromCalendar(year, month, day, hour, min, sec int, scale Timescale) (DateTime, error) {
	scale, err := TimescaleOf(scale)
	if err != nil {
		return DateTime{}, err
	}
	if err := validateCalendar(year, month, day, hour, min, sec); err != nil {
		return DateTime{}, err
	}
	civil, err := parseCivil(fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		year, month, day, hour, min, sec))
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{i: toTAI(civil, scale)}, nil
}

// Now reads the system clock once, synchronously, and returns the current
// instant.
func Now() DateTime {
	return FromTime(time.Now())
}

// FromTime converts a stdlib time.Time, whose absolute instant is taken to
// be UTC wall-clock time. Sub-nanosecond monotonic detail is dropped.
func FromTime(t time.Time) DateTime {
	civil := instant.New(t.Unix(), int64(t.Nanosecond()))
	return DateTime{i: utcToTAI(civil)}
}

// Nsecs returns integer epoch-nanoseconds on the requested scale. TT is not
// supported and fails with UNSUPPORTED_SCALE; instants beyond the int64
// nanosecond range fail with VALUE_OUT_OF_RANGE.
func (dt DateTime) Nsecs(scale Timescale) (int64, error) {
	scale, err := TimescaleOf(scale)
	if err != nil {
		return 0, err
	}
	if scale == TT {
		return 0, newUnsupportedScaleError("Nsecs", TT)
	}
	ns, ok := inScale(dt.i, scale).Nanos()
	if !ok {
		return 0, newRangeError("instant overflows int64 nanoseconds")
	}
	return ns, nil
}

// Get returns the instant as a floating date value in the requested date
// system and scale.
func (dt DateTime) Get(system DateSystem, scale Timescale) (float64, error) {
	system, err := DateSystemOf(system)
	if err != nil {
		return 0, err
	}
	scale, err = TimescaleOf(scale)
	if err != nil {
		return 0, err
	}
	return toDateSystem(inScale(dt.i, scale), system), nil
}

// MJD is shorthand for Get(MJD, scale).
func (dt DateTime) MJD(scale Timescale) (float64, error) {
	return dt.Get(MJD, scale)
}

// String renders the UTC reading in the extended ISO-8601 form with a fixed
// nine-digit fraction and trailing Z.
func (dt DateTime) String() string {
	sec, nsec := taiToUTC(dt.i).Parts()
	return fmt.Sprintf("%s.%09dZ",
		time.Unix(sec, 0).UTC().Format("2006-01-02T15:04:05"), nsec)
}

// Equal reports whether two instants are exactly the same nanosecond.
func (dt DateTime) Equal(o DateTime) bool { return dt.i == o.i }

// Before reports whether dt is earlier than o.
func (dt DateTime) Before(o DateTime) bool { return dt.i.Before(o.i) }

// After reports whether dt is later than o.
func (dt DateTime) After(o DateTime) bool { return dt.i.After(o.i) }

// Compare orders two instants: -1 when dt is earlier, 0 when equal, +1 when
// later.
func (dt DateTime) Compare(o DateTime) int { return dt.i.Compare(o.i) }

// Sub returns dt - o in seconds, exact to the nanosecond for civil-time
// spans.
func (dt DateTime) Sub(o DateTime) float64 { return dt.i.Sub(o.i) }

// MarshalText renders the ISO-8601 form, so DateTime round-trips through
// encoding/json and text-based configuration.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText parses the forms accepted by Parse.
func (dt *DateTime) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
