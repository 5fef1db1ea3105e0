// Package format converts complex S-parameter samples to and from the three
// Touchstone renderings:
//
//   - DB: magnitude in decibels (20*log10) and phase
//   - MA: linear magnitude and phase
//   - RI: real and imaginary parts
//
// Phase is expressed in degrees or radians depending on the [AngleUnit].
//
// All functions are pure. [LinearToDB] maps a zero magnitude to -Inf and a
// negative one to NaN; nothing in this package panics or returns an error on
// numeric domain issues.
package format
