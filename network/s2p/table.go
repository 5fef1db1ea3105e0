package s2p

import (
	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
)

// Table is a formatted view of all four parameters.
type Table struct {
	Format format.Format
	Unit   format.AngleUnit

	axis   *frequency.Axis
	traces [4]format.Trace
}

// Trace returns a copy of the view of p. p must be valid.
func (t *Table) Trace(p Param) format.Trace {
	tr := t.traces[p]
	return format.Trace{
		Format: tr.Format,
		Unit:   tr.Unit,
		A:      append([]float64(nil), tr.A...),
		B:      append([]float64(nil), tr.B...),
	}
}

// Names returns the column names in load order, freq first.
func (t *Table) Names() []string {
	names := FieldNames(t.Format)
	return names[:]
}

// Columns returns every column keyed by name. The freq column follows the
// axis' current display unit.
func (t *Table) Columns() map[string][]float64 {
	names := FieldNames(t.Format)
	cols := make(map[string][]float64, len(names))
	cols[names[0]] = t.axis.Values()
	for _, p := range Params() {
		tr := t.Trace(p)
		cols[names[1+2*int(p)]] = tr.A
		cols[names[2+2*int(p)]] = tr.B
	}
	return cols
}
