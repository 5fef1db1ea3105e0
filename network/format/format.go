package format

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by parsers and validators.
var (
	ErrInvalidFormat  = errors.New("format: format must be one of DB, MA, RI")
	ErrTypeConstraint = errors.New("format: angle unit must be degrees or radians")
)

// Format is a two-field rendering of complex samples.
type Format string

// Supported formats.
const (
	DB Format = "DB"
	MA Format = "MA"
	RI Format = "RI"
)

// Field name suffixes used in keyed input and formatted output.
const (
	FieldMag   = "Mag"
	FieldPhase = "Phase"
	FieldReal  = "Real"
	FieldImag  = "Image"
)

// Valid reports whether f is DB, MA or RI.
func (f Format) Valid() bool {
	switch f {
	case DB, MA, RI:
		return true
	default:
		return false
	}
}

// Polar reports whether f carries magnitude and phase.
func (f Format) Polar() bool { return f == DB || f == MA }

// Fields returns the suffixes of the two fields of f: Mag/Phase for DB and
// MA, Real/Image for RI.
func (f Format) Fields() [2]string {
	if f == RI {
		return [2]string{FieldReal, FieldImag}
	}
	return [2]string{FieldMag, FieldPhase}
}

func (f Format) String() string { return string(f) }

// ParseFormat converts s to a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return f, nil
}

// AngleUnit selects how phase angles are expressed.
type AngleUnit int

const (
	// Degrees is the Touchstone default.
	Degrees AngleUnit = iota
	Radians
)

// Valid reports whether u is Degrees or Radians.
func (u AngleUnit) Valid() bool { return u == Degrees || u == Radians }

func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

// ParseAngleUnit accepts deg, degree, degrees, rad, radian and radians in
// any case.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrTypeConstraint, s)
	}
}

// AngleUnitFromDegrees maps a degrees flag to an AngleUnit. Anything but a
// bool fails with ErrTypeConstraint.
func AngleUnitFromDegrees(v any) (AngleUnit, error) {
	b, ok := v.(bool)
	if !ok {
		return 0, fmt.Errorf("%w: degrees flag must be a bool, got %T", ErrTypeConstraint, v)
	}
	if b {
		return Degrees, nil
	}
	return Radians, nil
}
