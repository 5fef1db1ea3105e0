package touchstone

import (
	"strconv"
	"strings"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
)

// Two-port data orders of a version 2.0 file. Version 1.0 files are always
// Order21_12.
const (
	Order12_21 = "12_21"
	Order21_12 = "21_12"
)

// Header collects the option line and keyword values of a file.
type Header struct {
	Version    string
	Unit       frequency.Unit
	Parameter  string
	Format     format.Format
	Resistance float64

	Ports        int
	TwoPortOrder string
	// Frequencies is the declared point count, 0 when not declared.
	Frequencies int

	Comments []string
}

func defaultHeader() Header {
	return Header{
		Version:      "1.0",
		Unit:         frequency.GHz,
		Parameter:    "S",
		Format:       format.MA,
		Resistance:   50,
		Ports:        2,
		TwoPortOrder: Order21_12,
	}
}

var optionUnits = map[string]frequency.Unit{
	"HZ":  frequency.Hz,
	"KHZ": frequency.KHz,
	"MHZ": frequency.MHz,
	"GHZ": frequency.GHz,
	"THZ": frequency.THz,
}

// parseOption applies an option line such as "# GHz S MA R 50". Tokens may
// appear in any order and any case; missing ones keep their defaults.
func (h *Header) parseOption(line int, text string) error {
	fields := strings.Fields(strings.TrimPrefix(text, "#"))
	for i := 0; i < len(fields); i++ {
		tok := strings.ToUpper(fields[i])
		if u, ok := optionUnits[tok]; ok {
			h.Unit = u
			continue
		}
		switch tok {
		case "S":
			h.Parameter = tok
		case "Y", "Z", "H", "G":
			return unsupportedErr(line, "%s-parameters", tok)
		case "DB", "MA", "RI":
			f, err := format.ParseFormat(tok)
			if err != nil {
				return syntaxErr(line, "%v", err)
			}
			h.Format = f
		case "R":
			if i+1 >= len(fields) {
				return syntaxErr(line, "reference resistance missing after R")
			}
			r, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil || r <= 0 {
				return syntaxErr(line, "invalid reference resistance %q", fields[i+1])
			}
			h.Resistance = r
			i++
		default:
			return syntaxErr(line, "unknown option %q", fields[i])
		}
	}
	return nil
}

// parseKeyword applies a [Keyword] value line. It reports whether the
// keyword starts network data and whether parsing should stop.
func (h *Header) parseKeyword(line int, text string) (data, stop bool, err error) {
	end := strings.IndexByte(text, ']')
	if end < 0 {
		return false, false, syntaxErr(line, "unterminated keyword %q", text)
	}
	keyword := strings.ToLower(strings.TrimSpace(text[1:end]))
	value := strings.TrimSpace(text[end+1:])

	switch keyword {
	case "version":
		if value != "2.0" && value != "2.1" {
			return false, false, unsupportedErr(line, "version %q", value)
		}
		h.Version = value
	case "number of ports":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false, false, syntaxErr(line, "invalid port count %q", value)
		}
		if n != 2 {
			return false, false, unsupportedErr(line, "%d-port data", n)
		}
		h.Ports = n
	case "two-port data order":
		if value != Order12_21 && value != Order21_12 {
			return false, false, syntaxErr(line, "invalid two-port data order %q", value)
		}
		h.TwoPortOrder = value
	case "number of frequencies":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return false, false, syntaxErr(line, "invalid frequency count %q", value)
		}
		h.Frequencies = n
	case "network data":
		return true, false, nil
	case "noise data", "end":
		return false, true, nil
	}
	return false, false, nil
}
