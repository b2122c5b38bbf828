package leap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_OffsetAt_IntegerEra(t *testing.T) {
	trials := []struct {
		mjd  float64
		want float64
	}{
		{45205, 21},
		{41498.9, 10},
		{41499.01, 11},
		{57203.99, 35},
		{57204.01, 36},
		{57000, 35},
		{57210, 36},
		{99999, 37}, // beyond the last entry the final step holds
	}
	for _, tr := range trials {
		assert.Equal(t, tr.want, Default().OffsetAt(tr.mjd), "mjd %v", tr.mjd)
	}
}

func TestTable_OffsetAt_BoundaryInclusive(t *testing.T) {
	// An entry takes effect exactly at its MJD.
	assert.Equal(t, 25.0, Default().OffsetAt(47892.0))
	assert.Equal(t, 24.0, Default().OffsetAt(47891.999999))
}

func TestTable_OffsetAt_DriftEra(t *testing.T) {
	// 1970-01-01 falls under the 1968-02-01 formula:
	// 4.2131700 + (40587-39126)*0.002592 = 8.000082s.
	assert.InDelta(t, 8.000082, Default().OffsetAt(40587), 1e-9)

	// The drift term follows the fractional day.
	assert.InDelta(t, 8.000082-0.002592, Default().OffsetAt(40586), 1e-9)
	assert.InDelta(t, 8.000082+0.001296, Default().OffsetAt(40587.5), 1e-9)
}

func TestTable_OffsetAt_BeforeFirstEntry(t *testing.T) {
	// Queries before 1961 extrapolate the first drift formula.
	got := Default().OffsetAt(37000)
	want := 1.4228180 + (37000-37300)*0.001296
	assert.InDelta(t, want, got, 1e-9)
}

func TestTable_OffsetAt_NonDecreasingFrom1972(t *testing.T) {
	// The pre-1972 history contains two small negative steps (1961-08-01,
	// 1968-02-01); from the integer era onward the offset only grows.
	prev := Default().OffsetAt(41317)
	for mjd := 41318.0; mjd < 58000; mjd++ {
		cur := Default().OffsetAt(mjd)
		require.GreaterOrEqual(t, cur, prev, "offset decreased at mjd %v", mjd)
		prev = cur
	}
}

func TestTable_Append_RejectsOutOfOrder(t *testing.T) {
	tbl := Default().Clone()

	err := tbl.Append(Entry{MJD: 57754, Offset: 38})
	require.Error(t, err, "duplicate MJD must be rejected")

	err = tbl.Append(Entry{MJD: 50000, Offset: 38})
	require.Error(t, err, "earlier MJD must be rejected")

	err = tbl.Append(Entry{MJD: 63249, Offset: 36})
	require.Error(t, err, "decreasing offset must be rejected")

	require.NoError(t, tbl.Append(Entry{MJD: 63249, Offset: 38}))
	assert.Equal(t, 38.0, tbl.OffsetAt(63300))
}

func TestTable_Clone_Independent(t *testing.T) {
	tbl := Default().Clone()
	n := Default().Len()

	require.NoError(t, tbl.Append(Entry{MJD: 70000, Offset: 38}))

	assert.Equal(t, n+1, tbl.Len())
	assert.Equal(t, n, Default().Len(), "appending to a clone must not grow the default table")
	assert.Equal(t, 37.0, Default().OffsetAt(70001))
}
