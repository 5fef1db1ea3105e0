package frequency

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Axis is one frequency sweep axis.
//
// Points are held in hertz. The unit and angular settings only change how
// points are presented by Values, Start and Stop.
type Axis struct {
	hz      []float64
	start   float64 // lowest point in Hz
	stop    float64 // highest point in Hz
	unit    Unit
	angular bool
	spacing Spacing
}

// New builds an axis from either WithSamples or the complete
// WithStart/WithStop/WithPoints triple.
func New(opts ...Option) (*Axis, error) {
	cfg := ApplyOptions(opts...)

	if !cfg.Unit.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUnit, string(cfg.Unit))
	}
	if cfg.Spacing != Linear && cfg.Spacing != Logarithmic {
		return nil, ErrInvalidSpacing
	}

	hasRange := cfg.hasStart || cfg.hasStop || cfg.hasPoints
	switch {
	case cfg.hasSamples && hasRange:
		return nil, ErrAmbiguousConstruction
	case cfg.hasSamples:
		return fromSamples(cfg)
	case cfg.hasStart && cfg.hasStop && cfg.hasPoints:
		return fromRange(cfg)
	default:
		return nil, &InitError{
			HasStart:  cfg.hasStart,
			HasStop:   cfg.hasStop,
			HasPoints: cfg.hasPoints,
		}
	}
}

// FromSamples builds an axis from explicit points given in the configured
// unit.
func FromSamples(values []float64, opts ...Option) (*Axis, error) {
	return New(append([]Option{WithSamples(values)}, opts...)...)
}

// FromRange builds an axis of points values from start to stop inclusive.
func FromRange(start, stop float64, points int, opts ...Option) (*Axis, error) {
	return New(append([]Option{WithStart(start), WithStop(stop), WithPoints(points)}, opts...)...)
}

func fromSamples(cfg Config) (*Axis, error) {
	if len(cfg.Samples) == 0 {
		return nil, ErrNoSamples
	}

	hz := make([]float64, len(cfg.Samples))
	for i, v := range cfg.Samples {
		hz[i] = toHz(v, cfg.Unit, cfg.Angular)
	}

	return newAxis(hz, cfg), nil
}

func fromRange(cfg Config) (*Axis, error) {
	if cfg.Points < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, cfg.Points)
	}

	start := toHz(cfg.Start, cfg.Unit, cfg.Angular)
	stop := toHz(cfg.Stop, cfg.Unit, cfg.Angular)

	hz := make([]float64, cfg.Points)
	if cfg.Points == 1 {
		hz[0] = start
		return newAxis(hz, cfg), nil
	}

	if cfg.Spacing == Logarithmic {
		if start <= 0 || stop <= 0 {
			return nil, fmt.Errorf("%w: start=%g Hz stop=%g Hz", ErrLogSpacing, start, stop)
		}
		floats.LogSpan(hz, start, stop)
	} else {
		floats.Span(hz, start, stop)
	}
	// Both endpoints are part of the sweep exactly.
	hz[0], hz[len(hz)-1] = start, stop

	return newAxis(hz, cfg), nil
}

func newAxis(hz []float64, cfg Config) *Axis {
	return &Axis{
		hz:      hz,
		start:   floats.Min(hz),
		stop:    floats.Max(hz),
		unit:    cfg.Unit,
		angular: cfg.Angular,
		spacing: cfg.Spacing,
	}
}

// toHz converts an input value to hertz: ω→f first, then unit scaling.
func toHz(v float64, unit Unit, angular bool) float64 {
	if angular {
		v = v / (2 * math.Pi)
	}
	return v * unit.Ratio()
}

// present converts a stored hertz value for display: f→ω first, then unit
// scaling.
func (a *Axis) present(hz float64) float64 {
	if a.angular {
		hz = 2 * math.Pi * hz
	}
	return hz / a.unit.Ratio()
}

// Len returns the number of points.
func (a *Axis) Len() int { return len(a.hz) }

// Values returns the points in the display unit.
func (a *Axis) Values() []float64 {
	out := make([]float64, len(a.hz))
	for i, v := range a.hz {
		out[i] = a.present(v)
	}
	return out
}

// HzValues returns a copy of the points in hertz regardless of the display
// settings.
func (a *Axis) HzValues() []float64 {
	out := make([]float64, len(a.hz))
	copy(out, a.hz)
	return out
}

// Start returns the lowest point in the display unit.
func (a *Axis) Start() float64 { return a.present(a.start) }

// Stop returns the highest point in the display unit.
func (a *Axis) Stop() float64 { return a.present(a.stop) }

// Unit returns the display unit.
func (a *Axis) Unit() Unit { return a.unit }

// SetUnit changes the display unit. The axis is left untouched on error.
func (a *Axis) SetUnit(unit Unit) error {
	if !unit.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, string(unit))
	}
	a.unit = unit
	return nil
}

// Angular reports whether values are presented as angular frequency.
func (a *Axis) Angular() bool { return a.angular }

// SetAngular toggles angular presentation.
func (a *Axis) SetAngular(angular bool) { a.angular = angular }

// SetAngularValue is SetAngular for untyped input such as decoded config
// values. Anything but a bool fails with ErrTypeConstraint.
func (a *Axis) SetAngularValue(v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrTypeConstraint, v)
	}
	a.angular = b
	return nil
}

// Spacing returns the spacing the axis was constructed with.
func (a *Axis) Spacing() Spacing { return a.spacing }

// Resolution returns half the mean point spacing in hertz,
// (stop-start)/(2*Len).
func (a *Axis) Resolution() float64 {
	if len(a.hz) == 0 {
		return 0
	}
	return (a.stop - a.start) / float64(2*len(a.hz))
}

// EqualApprox reports whether both axes have the same length and every pair
// of points satisfies |a-b| <= tol + 1e-5*|b| in hertz.
func (a *Axis) EqualApprox(other *Axis, tol float64) bool {
	return a.EqualWithin(other, tol, 1e-5)
}

// EqualWithin reports whether both axes have the same length and every pair
// of points satisfies |a-b| <= atol + rtol*|b| in hertz.
func (a *Axis) EqualWithin(other *Axis, atol, rtol float64) bool {
	if other == nil || len(a.hz) != len(other.hz) {
		return false
	}
	return floats.EqualFunc(a.hz, other.hz, func(x, y float64) bool {
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	})
}

// Clone returns an independent copy including the display settings.
func (a *Axis) Clone() *Axis {
	c := *a
	c.hz = a.HzValues()
	return &c
}

func (a *Axis) String() string {
	vals := a.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("[%s] %s", strings.Join(parts, " "), a.DisplayUnit())
}

// DisplayUnit returns the unit label of Values, for example "GHz" or, when
// angular, "Grad/s".
func (a *Axis) DisplayUnit() string {
	if a.angular {
		return strings.TrimSuffix(string(a.unit), "Hz") + "rad/s"
	}
	return string(a.unit)
}
