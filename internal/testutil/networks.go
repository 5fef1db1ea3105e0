package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// Constant returns n copies of v.
func Constant(v complex128, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// DeterministicResponse generates complex samples with magnitudes in
// (0, maxMag] and phases in (-π, π], using a fixed seed.
func DeterministicResponse(seed int64, maxMag float64, n int) []complex128 {
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		mag := maxMag * (1 - rng.Float64())
		phase := math.Pi * (2*rng.Float64() - 1)
		out[i] = cmplx.Rect(mag, phase)
	}
	return out
}

// DelayLine returns S21 samples of an ideal lossless line with the given
// delay in seconds at each frequency in hertz.
func DelayLine(freqHz []float64, delay float64) []complex128 {
	out := make([]complex128, len(freqHz))
	for i, f := range freqHz {
		out[i] = cmplx.Rect(1, -2*math.Pi*f*delay)
	}
	return out
}
