package frequency

import "fmt"

// Unit is the display unit of an axis.
type Unit string

// Supported units.
const (
	THz     Unit = "THz"
	GHz     Unit = "GHz"
	MHz     Unit = "MHz"
	KHz     Unit = "kHz"
	Hz      Unit = "Hz"
	MilliHz Unit = "mHz"
)

var unitRatios = map[Unit]float64{
	THz:     1e12,
	GHz:     1e9,
	MHz:     1e6,
	KHz:     1e3,
	Hz:      1,
	MilliHz: 1e-3,
}

// Units returns all supported units from largest to smallest.
func Units() []Unit {
	return []Unit{THz, GHz, MHz, KHz, Hz, MilliHz}
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	_, ok := unitRatios[u]
	return ok
}

// Ratio returns the number of hertz in one u. It returns 0 for an
// unsupported unit.
func (u Unit) Ratio() float64 {
	return unitRatios[u]
}

func (u Unit) String() string { return string(u) }

// ParseUnit converts s to a Unit. Matching is case-sensitive because
// "mHz" and "MHz" differ by nine orders of magnitude.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	return u, nil
}
