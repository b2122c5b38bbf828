package tempo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obskit/tempo/internal/instant"
)

func TestDateSystemFormulas(t *testing.T) {
	i := fromDateSystem(51544.5, MJD)

	assert.Equal(t, 51544.5, toDateSystem(i, MJD))
	assert.Equal(t, 2451545.0, toDateSystem(i, JD))
	assert.Equal(t, 2000.0, toDateSystem(i, Epoch))

	// One Julian year after J2000.0.
	later := fromDateSystem(2001.0, Epoch)
	assert.Equal(t, 51544.5+365.25, toDateSystem(later, MJD))
}

func TestFromDateSystem_ExactWholeDays(t *testing.T) {
	// Whole-day MJD values must land on exact midnight instants with no
	// float residue in the nanosecond field.
	for _, mjd := range []float64{40587, 41317, 47892, 57754, 0} {
		sec, nsec := fromDateSystem(mjd, MJD).Parts()
		assert.Equal(t, uint32(0), nsec, "mjd %v", mjd)
		assert.Equal(t, int64((mjd-40587)*86400), sec, "mjd %v", mjd)
	}
}

func TestFromDateSystem_DyadicFractions(t *testing.T) {
	// Day fractions that are exact in binary round-trip to the nanosecond.
	cases := []struct {
		mjd  float64
		sec  int64
		nsec uint32
	}{
		{45205.125, 399006000, 0},
		{45205.5, 399038400, 0},
		{45205.0078125, 398995875, 0}, // 1/128 day = 675s
	}
	for _, c := range cases {
		sec, nsec := fromDateSystem(c.mjd, MJD).Parts()
		assert.Equal(t, c.sec, sec, "mjd %v", c.mjd)
		assert.Equal(t, c.nsec, nsec, "mjd %v", c.mjd)
		assert.Equal(t, c.mjd, toDateSystem(instant.New(c.sec, int64(c.nsec)), MJD))
	}
}

func TestTTOffsetIsExact(t *testing.T) {
	i := instant.FromNanos(1192755506000000000)
	tt := inScale(i, TT)
	ns, ok := tt.Nanos()
	assert.True(t, ok)
	assert.Equal(t, int64(1192755538184000000), ns)

	assert.Equal(t, i, toTAI(tt, TT))
}

func TestUTCRoundTripNearBoundary(t *testing.T) {
	// Conversions either side of the 1990-01-01 leap step (MJD 47892,
	// offset 24 -> 25) must round-trip exactly through both directions.
	for _, utcNs := range []int64{
		631151998000000000, // 2s before the boundary
		631151999999999999,
		631152000000000000, // the boundary itself
		631152000000000001,
		631152002000000000,
	} {
		u := instant.FromNanos(utcNs)
		back := taiToUTC(utcToTAI(u))
		assert.Equal(t, u, back, "utc ns %d", utcNs)
	}
}

func TestUTCToTAI_RoundsAfter1972(t *testing.T) {
	// Inside the integer-leap era the applied offset is a whole second
	// even though the drift formulas never produce one.
	u := instant.FromSeconds(631152000)
	delta := utcToTAI(u).Sub(u)
	assert.Equal(t, 25.0, delta)

	// Before 1972 the fractional published value applies as-is.
	pre := instant.FromSeconds(0)
	assert.InDelta(t, 8.000082, utcToTAI(pre).Sub(pre), 1e-6)
}
