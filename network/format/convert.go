package format

import (
	"math"
	"math/cmplx"
)

// DBToLinear converts dB to linear magnitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear magnitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Compose builds a complex sample from the two fields of f. For DB and MA, a
// is the magnitude (in dB for DB) and b the phase in unit; for RI they are
// the real and imaginary parts.
func Compose(f Format, a, b float64, unit AngleUnit) complex128 {
	if f == RI {
		return complex(a, b)
	}

	mag := a
	if f == DB {
		mag = DBToLinear(a)
	}

	phase := b
	if unit == Degrees {
		phase = DegToRad(b)
	}

	return cmplx.Rect(mag, phase)
}

// Decompose splits z into the two fields of f. Phase is atan2(Im, Re) in
// unit, within [-180, 180] or [-π, π]; the sign of a zero imaginary part
// selects between -180 and 180.
func Decompose(f Format, z complex128, unit AngleUnit) (a, b float64) {
	if f == RI {
		return real(z), imag(z)
	}

	mag := cmplx.Abs(z)
	if f == DB {
		mag = LinearToDB(mag)
	}

	phase := math.Atan2(imag(z), real(z))
	if unit == Degrees {
		phase = RadToDeg(phase)
	}

	return mag, phase
}
