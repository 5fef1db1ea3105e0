package compare_test

import (
	"fmt"

	"github.com/llemish/RF/network/compare"
	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/s2p"
)

func ExampleCompare() {
	a, _ := s2p.New(2)
	b, _ := s2p.New(2)
	for i, f := range []float64{1e9, 2e9} {
		_ = a.SetPoint(i, f, [4]complex128{0, 0, 1, 0})
		_ = b.SetPoint(i, f, [4]complex128{0, 0, 0.5i, 0})
	}

	c, err := compare.Compare(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = c.SetFormat(format.RI)
	diff, _ := c.Get("S21_diff")
	fmt.Printf("%.1f%+.1fi\n", diff.Trace.A[0], diff.Trace.B[0])

	// Output:
	// 1.0-0.5i
}
