package leap

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MergeYAML appends announced leap seconds read from a YAML document of the
// form published alongside IERS Bulletin C updates:
//
//	- mjd: 63249
//	  offset: 38
//
// Entries must continue the table in effective order; the table is left
// unchanged when any entry fails validation before it.
func (t *Table) MergeYAML(r io.Reader) error {
	var updates []Entry
	if err := yaml.NewDecoder(r).Decode(&updates); err != nil {
		return fmt.Errorf("leap: parse update: %w", err)
	}
	merged := t.Clone()
	for _, e := range updates {
		e.DriftMJD, e.DriftRate = 0, 0
		if err := merged.Append(e); err != nil {
			return err
		}
	}
	t.entries = merged.entries
	return nil
}
