package plot

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/llemish/RF/internal/testutil"
	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
	"github.com/llemish/RF/network/s2p"
)

func delayNetwork(t *testing.T) *s2p.Network {
	t.Helper()

	freq := testutil.Linspace(1e9, 2e9, 11)
	s21 := testutil.DelayLine(freq, 0.5e-9)
	s11 := testutil.DeterministicResponse(3, 0.3, len(freq))

	n, err := s2p.New(len(freq), s2p.WithUnit(frequency.GHz))
	require.NoError(t, err)
	for i, f := range freq {
		require.NoError(t, n.SetPoint(i, f, [4]complex128{s11[i], s21[i], s21[i], s11[i]}))
	}
	return n
}

func TestRenderPNG(t *testing.T) {
	n := delayNetwork(t)
	series, err := FromNetwork(n, s2p.S11, s2p.S21)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "S21", series[1].Name)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, n.Frequency(), series, WithTitle("delay line"), WithSize(4*vg.Inch, 3*vg.Inch)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderSVG(t *testing.T) {
	n := delayNetwork(t)
	require.NoError(t, n.SetFormat(format.RI))
	series, err := FromNetwork(n, s2p.S21)
	require.NoError(t, err)
	testutil.RequireFinite(t, series[0].Trace.A)
	testutil.RequireFinite(t, series[0].Trace.B)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, n.Frequency(), series, WithType(SVG)))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderDropsNonFinite(t *testing.T) {
	n := delayNetwork(t)
	// An exact zero has a dB magnitude of -Inf.
	require.NoError(t, n.SetPoint(0, 1e9, [4]complex128{0, 1, 1, 0}))
	series, err := FromNetwork(n, s2p.S11)
	require.NoError(t, err)
	require.True(t, math.IsInf(series[0].Trace.A[0], -1))

	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, n.Frequency(), series))
}

func TestRenderErrors(t *testing.T) {
	n := delayNetwork(t)
	ax := n.Frequency()
	db, err := FromNetwork(n, s2p.S11)
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, ax, nil), ErrNoTraces)
	assert.ErrorIs(t, Render(&buf, ax, db, WithType("gif")), ErrImageType)

	require.NoError(t, n.SetFormat(format.RI))
	ri, err := FromNetwork(n, s2p.S21)
	require.NoError(t, err)
	assert.ErrorIs(t, Render(&buf, ax, append(db, ri...)), ErrMixedFormats)

	short := Series{Name: "short", Trace: format.DecomposeSlice(format.RI, testutil.Constant(1, 3), format.Degrees)}
	assert.ErrorIs(t, Render(&buf, ax, []Series{short}), ErrLengthMismatch)

	zeros := Series{Name: "zero", Trace: format.DecomposeSlice(format.DB, testutil.Constant(0, ax.Len()), format.Degrees)}
	assert.ErrorIs(t, Render(&buf, ax, []Series{zeros}), ErrNoFiniteSamples)

	_, err = FromNetwork(n, s2p.Param(7))
	assert.ErrorIs(t, err, s2p.ErrUnknownParameter)
	assert.Zero(t, buf.Len())
}
