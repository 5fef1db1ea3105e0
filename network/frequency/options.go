package frequency

// Spacing selects how a range is filled between start and stop.
type Spacing int

const (
	// Linear spaces points evenly in hertz.
	Linear Spacing = iota
	// Logarithmic spaces points evenly in log10(hertz).
	Logarithmic
)

func (s Spacing) String() string {
	switch s {
	case Linear:
		return "linear"
	case Logarithmic:
		return "logarithmic"
	default:
		return "unknown"
	}
}

// Config collects the construction parameters of an [Axis].
type Config struct {
	Samples []float64
	Start   float64
	Stop    float64
	Points  int
	Unit    Unit
	Angular bool
	Spacing Spacing

	hasSamples bool
	hasStart   bool
	hasStop    bool
	hasPoints  bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a configuration with hertz as unit, linear spacing and
// no points.
func DefaultConfig() Config {
	return Config{
		Unit:    Hz,
		Spacing: Linear,
	}
}

// WithSamples sets an explicit list of points expressed in the configured
// unit (and in rad/s scaled by the unit when angular).
func WithSamples(values []float64) Option {
	return func(cfg *Config) {
		cfg.Samples = values
		cfg.hasSamples = true
	}
}

// WithStart sets the first point of a range.
func WithStart(start float64) Option {
	return func(cfg *Config) {
		cfg.Start = start
		cfg.hasStart = true
	}
}

// WithStop sets the last point of a range.
func WithStop(stop float64) Option {
	return func(cfg *Config) {
		cfg.Stop = stop
		cfg.hasStop = true
	}
}

// WithPoints sets the number of points of a range.
func WithPoints(points int) Option {
	return func(cfg *Config) {
		cfg.Points = points
		cfg.hasPoints = true
	}
}

// WithUnit sets the unit the input is expressed in. It is also the initial
// display unit.
func WithUnit(unit Unit) Option {
	return func(cfg *Config) {
		cfg.Unit = unit
	}
}

// WithAngular marks the input as angular frequency. It is also the initial
// display mode.
func WithAngular(angular bool) Option {
	return func(cfg *Config) {
		cfg.Angular = angular
	}
}

// WithSpacing selects the range fill. It has no effect on sample input.
func WithSpacing(spacing Spacing) Option {
	return func(cfg *Config) {
		cfg.Spacing = spacing
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
