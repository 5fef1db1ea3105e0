// Package stats summarizes the magnitude of a complex trace over its
// frequency axis.
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
	"github.com/llemish/RF/network/s2p"
)

// ErrLengthMismatch reports a trace whose length differs from its axis.
var ErrLengthMismatch = errors.New("stats: trace length does not match the frequency axis")

// Summary holds magnitude statistics of one trace. Frequencies are in hertz;
// dB values use 20*log10 and are -Inf for a zero magnitude.
type Summary struct {
	Points int

	Max   float64 // largest linear magnitude
	MaxDB float64
	MaxAt float64
	Min   float64
	MinDB float64
	MinAt float64

	Average   float64 // mean linear magnitude
	AverageDB float64
	// RangeDB is MaxDB - MinDB, the ripple across the sweep.
	RangeDB float64
}

// Summarize computes the Summary of z sampled on axis.
func Summarize(axis *frequency.Axis, z []complex128) (Summary, error) {
	if len(z) != axis.Len() {
		return Summary{}, fmt.Errorf("%w: %d samples, %d points", ErrLengthMismatch, len(z), axis.Len())
	}

	mag := format.DecomposeSlice(format.MA, z, format.Degrees).A
	hz := axis.HzValues()
	maxIdx, minIdx := floats.MaxIdx(mag), floats.MinIdx(mag)

	s := Summary{
		Points:  len(mag),
		Max:     mag[maxIdx],
		MaxAt:   hz[maxIdx],
		Min:     mag[minIdx],
		MinAt:   hz[minIdx],
		Average: floats.Sum(mag) / float64(len(mag)),
	}
	s.MaxDB = format.LinearToDB(s.Max)
	s.MinDB = format.LinearToDB(s.Min)
	s.AverageDB = format.LinearToDB(s.Average)
	s.RangeDB = s.MaxDB - s.MinDB
	return s, nil
}

// Param summarizes parameter p of n.
func Param(n *s2p.Network, p s2p.Param) (Summary, error) {
	z, err := n.Raw(p)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(n.Frequency(), z)
}
