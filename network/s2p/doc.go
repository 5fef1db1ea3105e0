// Package s2p holds a sweep of two-port S-parameter matrices.
//
// A [Network] stores S11, S12, S21 and S22 as complex samples aligned with a
// [frequency.Axis]. Input may be given in any of the Touchstone renderings
// (DB, MA, RI); storage is always complex. Reads go through a formatted view
// that is built lazily for the current display format and angle unit and
// dropped whenever either changes.
//
// # Loading
//
// Data is loaded from nine equal-length series ordered
//
//	freq, S11_a, S11_b, S12_a, S12_b, S21_a, S21_b, S22_a, S22_b
//
// where a/b are Mag/Phase for DB and MA and Real/Image for RI, or from a map
// keyed by the same names (see [FieldNames]):
//
//	n, err := s2p.Load(format.MA, series, s2p.WithUnit(frequency.GHz))
//	s21, err := n.Get(s2p.S21)
//
// # T-parameters
//
// [Network.TParameters] converts every point to transmission parameters.
// A point with S21 exactly zero has no T-matrix; the whole conversion then
// fails with [ErrSingularNetwork] and returns no partial result.
//
// A Network is not safe for concurrent mutation. Use [Network.Clone] to hand
// a snapshot to another goroutine.
package s2p
