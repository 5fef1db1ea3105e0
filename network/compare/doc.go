// Package compare lines up two S-parameter sweeps measured on the same
// frequency grid and derives the sum and difference of their transmission
// parameters.
//
// Columns are named after the source parameter with a suffix: _1 and _2 for
// the first and second network, and S12_sum, S21_sum, S12_diff, S21_diff for
// the derived columns. "freq" names the shared axis.
//
//	c, err := compare.Compare(a, b)
//	diff, err := c.Get("S21_diff")
package compare
