package leap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_MergeYAML_AppendsAnnouncedLeaps(t *testing.T) {
	tbl := Default().Clone()
	doc := `
- mjd: 63249
  offset: 38
- mjd: 64000
  offset: 39
`
	require.NoError(t, tbl.MergeYAML(strings.NewReader(doc)))

	assert.Equal(t, 37.0, tbl.OffsetAt(60000))
	assert.Equal(t, 38.0, tbl.OffsetAt(63249))
	assert.Equal(t, 39.0, tbl.OffsetAt(64000.5))
}

func TestTable_MergeYAML_MalformedDocument(t *testing.T) {
	tbl := Default().Clone()
	err := tbl.MergeYAML(strings.NewReader("mjd: [not a list"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse update")
}

func TestTable_MergeYAML_RejectsNonMonotonic(t *testing.T) {
	tbl := Default().Clone()
	n := tbl.Len()
	doc := `
- mjd: 63249
  offset: 38
- mjd: 63000
  offset: 39
`
	require.Error(t, tbl.MergeYAML(strings.NewReader(doc)))
	assert.Equal(t, n, tbl.Len(), "failed merge must leave the table unchanged")
}
