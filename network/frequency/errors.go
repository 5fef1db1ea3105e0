package frequency

import "errors"

// Errors returned by axis construction and setters.
var (
	ErrFrequencyInit         = errors.New("frequency: incomplete axis construction")
	ErrAmbiguousConstruction = errors.New("frequency: both samples and a range were given")
	ErrNoSamples             = errors.New("frequency: samples must not be empty")
	ErrInvalidPoints         = errors.New("frequency: number of points must be >= 1")
	ErrLogSpacing            = errors.New("frequency: logarithmic spacing requires positive start and stop")
	ErrInvalidUnit           = errors.New("frequency: unit must be one of THz, GHz, MHz, kHz, Hz, mHz")
	ErrTypeConstraint        = errors.New("frequency: angular flag must be a bool")
	ErrInvalidSpacing        = errors.New("frequency: spacing must be linear or logarithmic")
)

// InitError reports which range parameters were supplied when an axis could
// be built neither from samples nor from a complete start/stop/points range.
type InitError struct {
	HasStart  bool
	HasStop   bool
	HasPoints bool
}

func (e *InitError) Error() string {
	switch {
	case !e.HasStart && e.HasStop && e.HasPoints:
		return "frequency: start frequency of the range was not given"
	case e.HasStart && !e.HasStop && e.HasPoints:
		return "frequency: stop frequency of the range was not given"
	case e.HasStart && e.HasStop && !e.HasPoints:
		return "frequency: number of points of the range was not given"
	case !e.HasStart && !e.HasStop && e.HasPoints:
		return "frequency: missing start and stop frequencies of the range"
	case e.HasStart && !e.HasStop && !e.HasPoints:
		return "frequency: missing stop frequency and number of points of the range"
	case !e.HasStart && e.HasStop && !e.HasPoints:
		return "frequency: missing start frequency and number of points of the range"
	default:
		return "frequency: neither samples nor a start/stop/points range were given"
	}
}

// Is makes errors.Is(err, ErrFrequencyInit) match any InitError.
func (e *InitError) Is(target error) bool {
	return target == ErrFrequencyInit
}

// Missing lists the names of the absent range parameters.
func (e *InitError) Missing() []string {
	var out []string
	if !e.HasStart {
		out = append(out, "start")
	}
	if !e.HasStop {
		out = append(out, "stop")
	}
	if !e.HasPoints {
		out = append(out, "points")
	}
	return out
}
