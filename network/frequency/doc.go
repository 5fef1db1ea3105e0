// Package frequency models the sweep axis of a frequency-indexed network
// measurement.
//
// An [Axis] always stores its points in base hertz. The display unit (THz
// down to mHz) and the angular flag (ω = 2πf) are presentation settings:
// changing them re-scales what [Axis.Values], [Axis.Start] and [Axis.Stop]
// return, never the stored points.
//
// # Construction
//
// An axis is built from either an explicit list of points or a
// start/stop/points range, never both:
//
//	ax, _ := frequency.FromSamples([]float64{1, 2, 3}, frequency.WithUnit(frequency.GHz))
//	lin, _ := frequency.FromRange(1, 2, 5, frequency.WithUnit(frequency.GHz))
//	log, _ := frequency.FromRange(10, 1e6, 51, frequency.WithSpacing(frequency.Logarithmic))
//
// When a range is incomplete, [New] returns an [*InitError] naming exactly
// which of start, stop and points is missing.
//
// Axis values are not safe for concurrent mutation.
package frequency
