package s2p

import (
	"fmt"
	"strings"

	"github.com/llemish/RF/network/format"
)

// Param names one entry of the 2x2 scattering matrix.
type Param int

// Scattering parameters in storage order.
const (
	S11 Param = iota
	S12
	S21
	S22
)

var paramNames = [...]string{"S11", "S12", "S21", "S22"}

// Params returns S11, S12, S21 and S22 in storage order.
func Params() []Param {
	return []Param{S11, S12, S21, S22}
}

// Valid reports whether p is one of the four parameters.
func (p Param) Valid() bool { return p >= S11 && p <= S22 }

func (p Param) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

// ParseParam converts "S11" .. "S22" (any case) to a Param.
func ParseParam(s string) (Param, error) {
	for i, name := range paramNames {
		if strings.EqualFold(s, name) {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, s)
}

// FreqField is the name of the frequency series.
const FreqField = "freq"

// FieldNames returns the nine series names for f in load order, for example
// freq, S11_Mag, S11_Phase, S12_Mag, ... for DB and MA.
func FieldNames(f format.Format) [9]string {
	var names [9]string
	names[0] = FreqField
	fields := f.Fields()
	for _, p := range Params() {
		names[1+2*int(p)] = p.String() + "_" + fields[0]
		names[2+2*int(p)] = p.String() + "_" + fields[1]
	}
	return names
}
