package s2p

import (
	"github.com/rs/zerolog"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
)

// Config holds load settings.
type Config struct {
	// Unit of the freq series; also the initial display unit of the axis.
	Unit frequency.Unit
	// Angular marks the freq series as angular frequency.
	Angular bool
	// AngleUnit of the phase series; also the initial display angle unit.
	AngleUnit format.AngleUnit
	Logger    zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns hertz, linear frequency, degrees and a no-op logger.
func DefaultConfig() Config {
	return Config{
		Unit:      frequency.Hz,
		AngleUnit: format.Degrees,
		Logger:    zerolog.Nop(),
	}
}

// WithUnit sets the unit of the freq series.
func WithUnit(unit frequency.Unit) Option {
	return func(cfg *Config) {
		cfg.Unit = unit
	}
}

// WithAngular marks the freq series as angular frequency.
func WithAngular(angular bool) Option {
	return func(cfg *Config) {
		cfg.Angular = angular
	}
}

// WithAngleUnit sets the unit of the phase series.
func WithAngleUnit(unit format.AngleUnit) Option {
	return func(cfg *Config) {
		cfg.AngleUnit = unit
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
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
