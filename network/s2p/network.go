package s2p

import (
	"fmt"
	"slices"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
)

// Network is a two-port S-parameter sweep.
type Network struct {
	axis *frequency.Axis
	// fill holds frequency points written by SetPoint that are not yet
	// reflected in axis.
	fill []float64
	s    [4][]complex128

	format format.Format
	angle  format.AngleUnit
	table  *Table

	log zerolog.Logger
}

// New returns a network of points zero-valued samples at 0 Hz, to be filled
// with SetPoint. The display format is DB.
func New(points int, opts ...Option) (*Network, error) {
	if points < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, points)
	}
	cfg := ApplyOptions(opts...)
	if !cfg.AngleUnit.Valid() {
		return nil, fmt.Errorf("%w: %s", format.ErrTypeConstraint, cfg.AngleUnit)
	}

	axis, err := frequency.FromSamples(make([]float64, points), frequency.WithAngular(cfg.Angular))
	if err != nil {
		return nil, err
	}
	if err := axis.SetUnit(cfg.Unit); err != nil {
		return nil, err
	}

	n := &Network{
		axis:   axis,
		format: format.DB,
		angle:  cfg.AngleUnit,
		log:    cfg.Logger,
	}
	for p := range n.s {
		n.s[p] = make([]complex128, points)
	}
	return n, nil
}

// Load builds a network from nine equal-length series in the order given by
// FieldNames(f). Phases are read in the configured angle unit and the freq
// series in the configured frequency unit.
func Load(f format.Format, series [][]float64, opts ...Option) (*Network, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %q", format.ErrInvalidFormat, string(f))
	}
	if len(series) != len(FieldNames(f)) {
		return nil, fmt.Errorf("%w: expected 9 series, got %d", ErrMalformedInput, len(series))
	}
	names := FieldNames(f)
	for i := 1; i < len(series); i++ {
		if len(series[i]) != len(series[0]) {
			return nil, fmt.Errorf("%w: series %s has %d points, %s has %d",
				ErrMalformedInput, names[i], len(series[i]), names[0], len(series[0]))
		}
	}

	return build(f, series, ApplyOptions(opts...))
}

// LoadMap is Load for series keyed by FieldNames(f). Every name must be
// present and no other key may appear.
func LoadMap(f format.Format, data map[string][]float64, opts ...Option) (*Network, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %q", format.ErrInvalidFormat, string(f))
	}
	names := FieldNames(f)

	var foreign []string
	for k := range data {
		if !slices.Contains(names[:], k) {
			foreign = append(foreign, k)
		}
	}
	if len(foreign) > 0 {
		sort.Strings(foreign)
		return nil, fmt.Errorf("%w: keys %q are not valid for format %s", ErrMalformedInput, foreign, f)
	}

	series := make([][]float64, len(names))
	for i, name := range names {
		v, ok := data[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing key %q for format %s", ErrMalformedInput, name, f)
		}
		series[i] = v
	}

	return Load(f, series, opts...)
}

func build(f format.Format, series [][]float64, cfg Config) (*Network, error) {
	if !cfg.AngleUnit.Valid() {
		return nil, fmt.Errorf("%w: %s", format.ErrTypeConstraint, cfg.AngleUnit)
	}

	axis, err := frequency.FromSamples(series[0],
		frequency.WithUnit(cfg.Unit),
		frequency.WithAngular(cfg.Angular),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	n := &Network{
		axis:   axis,
		format: f,
		angle:  cfg.AngleUnit,
		log:    cfg.Logger,
	}
	for _, p := range Params() {
		a, b := series[1+2*int(p)], series[2+2*int(p)]
		n.s[p] = make([]complex128, len(a))
		format.ComposeSlice(n.s[p], f, a, b, cfg.AngleUnit)
	}

	n.log.Debug().
		Str("format", string(f)).
		Str("angle", cfg.AngleUnit.String()).
		Str("unit", string(cfg.Unit)).
		Int("points", axis.Len()).
		Msg("network loaded")

	return n, nil
}

// Len returns the number of frequency points.
func (n *Network) Len() int { return len(n.s[S11]) }

// Frequency returns the owned frequency axis. Its display unit and angular
// mode are independent of the network's display format.
func (n *Network) Frequency() *frequency.Axis {
	n.syncAxis()
	return n.axis
}

// syncAxis rebuilds the axis from pending SetPoint writes, keeping its
// display settings.
func (n *Network) syncAxis() {
	if n.fill == nil {
		return
	}
	axis, err := frequency.FromSamples(n.fill)
	if err != nil {
		// fill has Len() >= 1 points, so this cannot happen.
		panic(err)
	}
	_ = axis.SetUnit(n.axis.Unit())
	axis.SetAngular(n.axis.Angular())
	n.axis = axis
	n.fill = nil
}

// SetPoint writes point i: its frequency in hertz and the four parameters in
// storage order S11, S12, S21, S22.
func (n *Network) SetPoint(i int, freqHz float64, s [4]complex128) error {
	if i < 0 || i >= n.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n.Len())
	}
	if n.fill == nil {
		n.fill = n.axis.HzValues()
	}
	n.fill[i] = freqHz
	for p := range n.s {
		n.s[p][i] = s[p]
	}
	n.table = nil
	return nil
}

// Format returns the display format.
func (n *Network) Format() format.Format { return n.format }

// SetFormat changes the display format. The network is left untouched on
// error.
func (n *Network) SetFormat(f format.Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", format.ErrInvalidFormat, string(f))
	}
	n.format = f
	n.table = nil
	return nil
}

// AngleUnit returns the display angle unit.
func (n *Network) AngleUnit() format.AngleUnit { return n.angle }

// SetAngleUnit changes the display angle unit. The network is left untouched
// on error.
func (n *Network) SetAngleUnit(u format.AngleUnit) error {
	if !u.Valid() {
		return fmt.Errorf("%w: %s", format.ErrTypeConstraint, u)
	}
	n.angle = u
	n.table = nil
	return nil
}

// SetDegrees selects degrees (true) or radians (false) from an untyped value.
func (n *Network) SetDegrees(v any) error {
	u, err := format.AngleUnitFromDegrees(v)
	if err != nil {
		return err
	}
	return n.SetAngleUnit(u)
}

// Table returns the formatted view for the current display format and angle
// unit. The view is cached until the next mutation; callers must not modify
// its slices.
func (n *Network) Table() *Table {
	if n.table == nil {
		n.table = n.formatted(n.format)
	}
	return n.table
}

// Formatted returns a view in f under the current angle unit without
// touching the display format.
func (n *Network) Formatted(f format.Format) (*Table, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %q", format.ErrInvalidFormat, string(f))
	}
	if f == n.format {
		return n.Table(), nil
	}
	return n.formatted(f), nil
}

func (n *Network) formatted(f format.Format) *Table {
	t := &Table{
		axis:   n.Frequency(),
		Format: f,
		Unit:   n.angle,
	}
	for _, p := range Params() {
		t.traces[p] = format.DecomposeSlice(f, n.s[p], n.angle)
	}
	return t
}

// Get returns parameter p rendered in the display format and angle unit.
func (n *Network) Get(p Param) (format.Trace, error) {
	if !p.Valid() {
		return format.Trace{}, fmt.Errorf("%w: %s", ErrUnknownParameter, p)
	}
	return n.Table().Trace(p), nil
}

// GetByName is Get for "S11" .. "S22".
func (n *Network) GetByName(name string) (format.Trace, error) {
	p, err := ParseParam(name)
	if err != nil {
		return format.Trace{}, err
	}
	return n.Get(p)
}

// Raw returns a copy of the complex samples of p.
func (n *Network) Raw(p Param) ([]complex128, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, p)
	}
	return slices.Clone(n.s[p]), nil
}

// Matrix returns the 2x2 S-matrix of point i as [[S11 S12] [S21 S22]].
func (n *Network) Matrix(i int) (*mat.CDense, error) {
	if i < 0 || i >= n.Len() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n.Len())
	}
	return mat.NewCDense(2, 2, []complex128{
		n.s[S11][i], n.s[S12][i],
		n.s[S21][i], n.s[S22][i],
	}), nil
}

// Clone returns an independent copy including display settings.
func (n *Network) Clone() *Network {
	c := &Network{
		axis:   n.Frequency().Clone(),
		format: n.format,
		angle:  n.angle,
		log:    n.log,
	}
	for p := range n.s {
		c.s[p] = slices.Clone(n.s[p])
	}
	return c
}

func (n *Network) String() string {
	ax := n.Frequency()
	return fmt.Sprintf("S2P network: %d points, %g-%g %s, format %s/%s",
		n.Len(), ax.Start(), ax.Stop(), ax.Unit(), n.format, n.angle)
}
