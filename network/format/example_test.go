package format_test

import (
	"fmt"

	"github.com/llemish/RF/network/format"
)

func ExampleDecompose() {
	z := format.Compose(format.DB, -20, 90, format.Degrees)

	re, im := format.Decompose(format.RI, z, format.Degrees)
	fmt.Printf("re=%.3f im=%.3f\n", re, im)

	mag, phase := format.Decompose(format.MA, z, format.Degrees)
	fmt.Printf("mag=%.3f phase=%.1f\n", mag, phase)

	// Output:
	// re=0.000 im=0.100
	// mag=0.100 phase=90.0
}
