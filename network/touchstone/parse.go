package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/s2p"
)

const rowWidth = 9

// File is a parsed Touchstone file.
type File struct {
	Header  Header
	Network *s2p.Network
}

// Config holds parser settings.
type Config struct {
	Logger zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// WithLogger sets the logger used for debug output. It is also handed to
// the parsed network.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// ParseFile opens and parses the file at path.
func ParseFile(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("touchstone: %w", err)
	}
	defer f.Close()
	return Parse(f, opts...)
}

type parser struct {
	hdr     Header
	line    int
	v2      bool
	inData  bool
	seenOpt bool

	rows    [][rowWidth]float64
	pending []float64
	pendAt  int
}

// Parse reads a two-port Touchstone file from r.
func Parse(r io.Reader, opts ...Option) (*File, error) {
	cfg := Config{Logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := &parser{hdr: defaultHeader()}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		stop, err := p.parseLine(sc.Text())
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("touchstone: read: %w", err)
	}

	if len(p.pending) > 0 {
		return nil, syntaxErr(p.pendAt, "incomplete data row: %d of %d values", len(p.pending), rowWidth)
	}
	if len(p.rows) == 0 {
		return nil, syntaxErr(p.line, "no network data")
	}
	if n := p.hdr.Frequencies; n > 0 && n != len(p.rows) {
		return nil, syntaxErr(p.line, "declared %d frequencies, found %d", n, len(p.rows))
	}

	net, err := s2p.Load(p.hdr.Format, p.series(),
		s2p.WithUnit(p.hdr.Unit),
		s2p.WithAngleUnit(format.Degrees),
		s2p.WithLogger(cfg.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("touchstone: %w", err)
	}

	cfg.Logger.Debug().
		Str("version", p.hdr.Version).
		Str("format", string(p.hdr.Format)).
		Str("unit", string(p.hdr.Unit)).
		Int("points", len(p.rows)).
		Msg("touchstone parsed")

	return &File{Header: p.hdr, Network: net}, nil
}

func (p *parser) parseLine(text string) (stop bool, err error) {
	if i := strings.IndexByte(text, '!'); i >= 0 {
		if c := strings.TrimSpace(text[i+1:]); c != "" {
			p.hdr.Comments = append(p.hdr.Comments, c)
		}
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}

	switch text[0] {
	case '#':
		// Only the first option line counts.
		if p.seenOpt {
			return false, nil
		}
		p.seenOpt = true
		return false, p.hdr.parseOption(p.line, text)
	case '[':
		if len(p.pending) > 0 {
			return false, syntaxErr(p.pendAt, "incomplete data row: %d of %d values", len(p.pending), rowWidth)
		}
		data, stop, err := p.hdr.parseKeyword(p.line, text)
		if err != nil {
			return false, err
		}
		if strings.HasPrefix(strings.ToLower(text), "[version]") {
			p.v2 = true
		}
		if data {
			p.inData = true
		}
		return stop, nil
	}

	// Version 2.0 values outside [Network Data] belong to multi-line
	// keywords such as [Reference].
	if p.v2 && !p.inData {
		return false, nil
	}
	return p.parseData(text)
}

func (p *parser) parseData(text string) (stop bool, err error) {
	fields := strings.Fields(text)
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return false, syntaxErr(p.line, "invalid number %q", f)
		}
		values[i] = v
	}

	if len(p.pending) == 0 {
		// Version 1.0 noise parameters follow the network data as
		// five-column rows starting again at a lower frequency.
		if !p.v2 && len(values) == 5 && len(p.rows) > 0 && values[0] <= p.rows[len(p.rows)-1][0] {
			return true, nil
		}
		p.pendAt = p.line
	}

	p.pending = append(p.pending, values...)
	switch {
	case len(p.pending) > rowWidth:
		return false, syntaxErr(p.pendAt, "data row has %d values, want %d", len(p.pending), rowWidth)
	case len(p.pending) < rowWidth:
		if !p.v2 {
			return false, syntaxErr(p.pendAt, "data row has %d values, want %d", len(p.pending), rowWidth)
		}
		return false, nil
	}

	var row [rowWidth]float64
	copy(row[:], p.pending)
	p.pending = p.pending[:0]
	if n := len(p.rows); n > 0 && row[0] <= p.rows[n-1][0] {
		return false, syntaxErr(p.pendAt, "frequency %g does not increase", row[0])
	}
	p.rows = append(p.rows, row)
	return false, nil
}

// series returns the rows as nine column series in s2p load order.
func (p *parser) series() [][]float64 {
	out := make([][]float64, rowWidth)
	for i := range out {
		out[i] = make([]float64, len(p.rows))
	}

	// File columns: freq, S11, N21 or N12, N12 or N21, S22.
	order := [rowWidth]int{0, 1, 2, 5, 6, 3, 4, 7, 8}
	if p.hdr.TwoPortOrder == Order12_21 {
		order = [rowWidth]int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	}
	for r, row := range p.rows {
		for c, src := range order {
			out[c][r] = row[src]
		}
	}
	return out
}
