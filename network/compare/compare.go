package compare

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/cmplxs"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
	"github.com/llemish/RF/network/s2p"
)

// Errors returned by Compare and accessors.
var (
	ErrIncompatibleSweep = errors.New("compare: frequency sweeps do not match")
	ErrNilNetwork        = errors.New("compare: network is nil")
	ErrUnknownParameter  = errors.New("compare: unknown parameter")
)

// FreqColumn names the shared frequency axis.
const FreqColumn = "freq"

var columnNames = []string{
	FreqColumn,
	"S11_1", "S11_2",
	"S12_1", "S12_2",
	"S21_1", "S21_2",
	"S22_1", "S22_2",
	"S12_sum", "S21_sum",
	"S12_diff", "S21_diff",
}

// Config holds comparison settings.
type Config struct {
	// Tolerance is the absolute frequency tolerance in hertz. A negative
	// value derives it from the point spacing of both sweeps and adds a
	// relative term of 1e-5 per point.
	Tolerance float64
	Logger    zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// WithTolerance sets an explicit frequency tolerance in hertz. Points must
// satisfy |fa-fb| <= hz with no relative term, so 0 requires exact equality.
// A negative hz is ignored.
func WithTolerance(hz float64) Option {
	return func(cfg *Config) {
		if hz >= 0 {
			cfg.Tolerance = hz
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// Comparison holds two aligned sweeps and their derived columns. It is
// read-only apart from its display settings.
type Comparison struct {
	axis *frequency.Axis
	cols map[string][]complex128

	format format.Format
	angle  format.AngleUnit
	cache  map[string]format.Trace
}

// Column is one named column: Frequency is set for "freq", Trace otherwise.
type Column struct {
	Name      string
	Frequency *frequency.Axis
	Trace     format.Trace
}

// Compare aligns a and b. Both must have the same number of points and
// frequencies equal within the tolerance; by default the tolerance is the
// smaller of the two sweeps' Resolution. Display format, angle unit and
// frequency display settings are taken from a.
func Compare(a, b *s2p.Network, opts ...Option) (*Comparison, error) {
	if a == nil || b == nil {
		return nil, ErrNilNetwork
	}
	cfg := Config{Tolerance: -1, Logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fa, fb := a.Frequency(), b.Frequency()
	if fa.Len() != fb.Len() {
		return nil, fmt.Errorf("%w: %d points vs %d points", ErrIncompatibleSweep, fa.Len(), fb.Len())
	}

	tol, rtol := cfg.Tolerance, 0.0
	if tol < 0 {
		tol, rtol = math.Min(fa.Resolution(), fb.Resolution()), 1e-5
	}
	if !fa.EqualWithin(fb, tol, rtol) {
		return nil, fmt.Errorf("%w: frequencies differ by more than %g Hz", ErrIncompatibleSweep, tol)
	}

	c := &Comparison{
		axis:   fa.Clone(),
		cols:   make(map[string][]complex128, len(columnNames)-1),
		format: a.Format(),
		angle:  a.AngleUnit(),
	}
	for _, p := range s2p.Params() {
		// Params are valid, so Raw cannot fail.
		ra, _ := a.Raw(p)
		rb, _ := b.Raw(p)
		c.cols[p.String()+"_1"] = ra
		c.cols[p.String()+"_2"] = rb
	}
	for _, p := range []s2p.Param{s2p.S12, s2p.S21} {
		x, y := c.cols[p.String()+"_1"], c.cols[p.String()+"_2"]
		c.cols[p.String()+"_sum"] = cmplxs.AddTo(make([]complex128, len(x)), x, y)
		c.cols[p.String()+"_diff"] = cmplxs.SubTo(make([]complex128, len(x)), x, y)
	}

	cfg.Logger.Debug().
		Int("points", fa.Len()).
		Float64("tolerance_hz", tol).
		Msg("networks compared")

	return c, nil
}

// Names returns all column names, freq first.
func (c *Comparison) Names() []string {
	return slices.Clone(columnNames)
}

// Len returns the number of points.
func (c *Comparison) Len() int { return c.axis.Len() }

// Frequency returns the shared axis.
func (c *Comparison) Frequency() *frequency.Axis { return c.axis }

// Format returns the display format.
func (c *Comparison) Format() format.Format { return c.format }

// SetFormat changes the display format.
func (c *Comparison) SetFormat(f format.Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", format.ErrInvalidFormat, string(f))
	}
	c.format = f
	c.cache = nil
	return nil
}

// AngleUnit returns the display angle unit.
func (c *Comparison) AngleUnit() format.AngleUnit { return c.angle }

// SetAngleUnit changes the display angle unit.
func (c *Comparison) SetAngleUnit(u format.AngleUnit) error {
	if !u.Valid() {
		return fmt.Errorf("%w: %s", format.ErrTypeConstraint, u)
	}
	c.angle = u
	c.cache = nil
	return nil
}

// SetDegrees selects degrees (true) or radians (false) from an untyped value.
func (c *Comparison) SetDegrees(v any) error {
	u, err := format.AngleUnitFromDegrees(v)
	if err != nil {
		return err
	}
	return c.SetAngleUnit(u)
}

// Get returns the named column. "freq" yields the shared axis; every other
// column is rendered in the display format and angle unit.
func (c *Comparison) Get(name string) (Column, error) {
	if name == FreqColumn {
		return Column{Name: name, Frequency: c.axis}, nil
	}
	raw, ok := c.cols[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	tr, ok := c.cache[name]
	if !ok {
		tr = format.DecomposeSlice(c.format, raw, c.angle)
		if c.cache == nil {
			c.cache = make(map[string]format.Trace)
		}
		c.cache[name] = tr
	}

	return Column{
		Name: name,
		Trace: format.Trace{
			Format: tr.Format,
			Unit:   tr.Unit,
			A:      slices.Clone(tr.A),
			B:      slices.Clone(tr.B),
		},
	}, nil
}

// Raw returns a copy of the complex samples of a non-frequency column.
func (c *Comparison) Raw(name string) ([]complex128, error) {
	raw, ok := c.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	return slices.Clone(raw), nil
}
