package touchstone_test

import (
	"fmt"
	"strings"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/s2p"
	"github.com/llemish/RF/network/touchstone"
)

func ExampleParse() {
	const data = `! attenuator
# MHz S DB R 50
100 -40 0 -6 0 -6 0 -40 0
200 -38 0 -6 0 -6 0 -38 0
`
	f, err := touchstone.Parse(strings.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}

	n := f.Network
	fmt.Println(n.Frequency())

	_ = n.SetFormat(format.MA)
	s21, _ := n.Get(s2p.S21)
	fmt.Printf("|S21| = %.3f\n", s21.A[0])

	// Output:
	// [100 200] MHz
	// |S21| = 0.501
}
