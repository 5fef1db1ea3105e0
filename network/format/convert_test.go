package format

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llemish/RF/internal/testutil"
)

func TestDBConversions(t *testing.T) {
	for _, x := range []float64{1e-9, 1e-3, 0.5, 1, 2, 31.6, 1e6} {
		got := DBToLinear(LinearToDB(x))
		assert.InEpsilon(t, x, got, 1e-12, "x=%v", x)
	}

	assert.InDelta(t, -6.0206, LinearToDB(0.5), 1e-4)
	assert.InDelta(t, 10, DBToLinear(20), 1e-12)
}

func TestLinearToDBDomainPolicy(t *testing.T) {
	assert.True(t, math.IsInf(LinearToDB(0), -1))
	assert.True(t, math.IsNaN(LinearToDB(-1)))
	assert.Equal(t, 0.0, DBToLinear(math.Inf(-1)))
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-15)
	assert.InDelta(t, 90, RadToDeg(math.Pi/2), 1e-12)
	assert.InDelta(t, 37.5, RadToDeg(DegToRad(37.5)), 1e-12)
}

var roundTripSamples = []complex128{
	complex(0.3, -0.4),
	complex(0, 2),    // zero real part
	complex(-1.5, 0), // zero imaginary part
	0,                // zero magnitude
	complex(-0.01, -0.02),
	cmplx.Rect(0.9, math.Pi),
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	for _, f := range []Format{DB, MA, RI} {
		for _, unit := range []AngleUnit{Degrees, Radians} {
			for _, z := range roundTripSamples {
				a, b := Decompose(f, z, unit)
				got := Compose(f, a, b, unit)
				assert.InDelta(t, 0, cmplx.Abs(got-z), 1e-12, "format=%s unit=%s z=%v", f, unit, z)
			}
		}
	}
}

func TestDecomposeFields(t *testing.T) {
	z := complex(0, 1)

	mag, phase := Decompose(MA, z, Degrees)
	assert.InDelta(t, 1, mag, 1e-15)
	assert.InDelta(t, 90, phase, 1e-12)

	db, phase := Decompose(DB, z, Radians)
	assert.InDelta(t, 0, db, 1e-12)
	assert.InDelta(t, math.Pi/2, phase, 1e-15)

	re, im := Decompose(RI, complex(3, -4), Degrees)
	assert.Equal(t, 3.0, re)
	assert.Equal(t, -4.0, im)

	db, phase = Decompose(DB, 0, Degrees)
	assert.True(t, math.IsInf(db, -1))
	assert.Equal(t, 0.0, phase)
}

func TestDecomposePhaseSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)

	_, deg := Decompose(MA, complex(-1, negZero), Degrees)
	assert.InDelta(t, -180, deg, 1e-12)
	_, deg = Decompose(MA, complex(-1, 0), Degrees)
	assert.InDelta(t, 180, deg, 1e-12)

	_, rad := Decompose(DB, complex(-2, negZero), Radians)
	assert.Equal(t, -math.Pi, rad)
}

func TestComposeFromDB(t *testing.T) {
	z := Compose(DB, -20, 180, Degrees)
	assert.InDelta(t, -0.1, real(z), 1e-12)
	assert.InDelta(t, 0, imag(z), 1e-12)

	z = Compose(MA, 2, math.Pi/2, Radians)
	assert.InDelta(t, 0, real(z), 1e-12)
	assert.InDelta(t, 2, imag(z), 1e-12)
}

func TestDecomposeSliceMatchesScalar(t *testing.T) {
	z := testutil.DeterministicResponse(3, 1, 97)
	z = append(z, roundTripSamples...)

	for _, f := range []Format{DB, MA, RI} {
		for _, unit := range []AngleUnit{Degrees, Radians} {
			tr := DecomposeSlice(f, z, unit)
			require.Equal(t, len(z), tr.Len())
			for i, c := range z {
				a, b := Decompose(f, c, unit)
				if math.IsInf(a, -1) {
					assert.True(t, math.IsInf(tr.A[i], -1))
				} else {
					assert.InDelta(t, a, tr.A[i], 1e-12)
				}
				assert.InDelta(t, b, tr.B[i], 1e-12)
			}
			testutil.RequireComplexSliceNearlyEqual(t, tr.Complex(), z, 1e-12)
		}
	}
}

func TestDecomposeSliceEmpty(t *testing.T) {
	tr := DecomposeSlice(MA, nil, Degrees)
	assert.Equal(t, 0, tr.Len())
}

func TestComposeSlicePanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		ComposeSlice(make([]complex128, 2), MA, []float64{1}, []float64{1, 2}, Degrees)
	})
}
