package s2p

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/llemish/RF/network/frequency"
)

// TParams holds transmission parameters of a two-port sweep.
type TParams struct {
	axis *frequency.Axis
	t11  []complex128
	t12  []complex128
	t21  []complex128
	t22  []complex128
}

// TParameters converts every point to T-parameters:
//
//	det = S11*S22 - S21*S12
//	T11 = -det/S21   T12 = S11/S21
//	T21 = -S22/S21   T22 = 1/S21
//
// If S21 is exactly zero at any point the conversion fails with
// ErrSingularNetwork for the first such point and no result is returned.
func (n *Network) TParameters() (*TParams, error) {
	s11, s12, s21, s22 := n.s[S11], n.s[S12], n.s[S21], n.s[S22]
	ax := n.Frequency()

	if i := slices.Index(s21, 0); i >= 0 {
		return nil, fmt.Errorf("%w: point %d (%g Hz)", ErrSingularNetwork, i, ax.HzValues()[i])
	}

	size := n.Len()
	t := &TParams{
		axis: ax.Clone(),
		t11:  make([]complex128, size),
		t12:  make([]complex128, size),
		t21:  make([]complex128, size),
		t22:  make([]complex128, size),
	}
	for i := range size {
		det := s11[i]*s22[i] - s21[i]*s12[i]
		t.t11[i] = -det / s21[i]
		t.t12[i] = s11[i] / s21[i]
		t.t21[i] = -s22[i] / s21[i]
		t.t22[i] = 1 / s21[i]
	}

	n.log.Debug().Int("points", size).Msg("converted to T-parameters")
	return t, nil
}

// Len returns the number of points.
func (t *TParams) Len() int { return len(t.t11) }

// Frequency returns a copy of the source axis taken at conversion time.
func (t *TParams) Frequency() *frequency.Axis { return t.axis }

// T11 returns a copy of T11.
func (t *TParams) T11() []complex128 { return slices.Clone(t.t11) }

// T12 returns a copy of T12.
func (t *TParams) T12() []complex128 { return slices.Clone(t.t12) }

// T21 returns a copy of T21.
func (t *TParams) T21() []complex128 { return slices.Clone(t.t21) }

// T22 returns a copy of T22.
func (t *TParams) T22() []complex128 { return slices.Clone(t.t22) }

// Matrix returns the 2x2 T-matrix of point i as [[T11 T12] [T21 T22]].
func (t *TParams) Matrix(i int) (*mat.CDense, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, t.Len())
	}
	return mat.NewCDense(2, 2, []complex128{
		t.t11[i], t.t12[i],
		t.t21[i], t.t22[i],
	}), nil
}
