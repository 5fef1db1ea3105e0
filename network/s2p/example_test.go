package s2p_test

import (
	"fmt"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
	"github.com/llemish/RF/network/s2p"
)

func ExampleLoad() {
	series := [][]float64{
		{1, 2, 3},
		{0.5, 0.5, 0.5}, {180, 180, 180}, // S11
		{1, 1, 1}, {0, 0, 0}, // S12
		{1, 1, 1}, {90, 90, 90}, // S21
		{0, 0, 0}, {0, 0, 0}, // S22
	}
	n, err := s2p.Load(format.MA, series, s2p.WithUnit(frequency.GHz))
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = n.SetFormat(format.DB)
	s11, _ := n.Get(s2p.S11)
	fmt.Printf("S11 %.2f dB %.0f deg\n", s11.A[0], s11.B[0])

	_ = n.SetFormat(format.RI)
	s21, _ := n.Get(s2p.S21)
	fmt.Printf("S21 %.1f%+.1fi\n", s21.A[0], s21.B[0])

	// Output:
	// S11 -6.02 dB 180 deg
	// S21 0.0+1.0i
}
