package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
	"github.com/llemish/RF/network/s2p"
)

// Errors returned by Render.
var (
	ErrNoTraces        = errors.New("plot: no traces to render")
	ErrMixedFormats    = errors.New("plot: traces use different formats")
	ErrLengthMismatch  = errors.New("plot: trace length does not match the frequency axis")
	ErrNoFiniteSamples = errors.New("plot: no finite samples to draw")
	ErrImageType       = errors.New("plot: image type must be png or svg")
)

// ImageType selects the output encoding.
type ImageType string

const (
	PNG ImageType = "png"
	SVG ImageType = "svg"
)

// Series is one named trace.
type Series struct {
	Name  string
	Trace format.Trace
}

// Config holds rendering settings.
type Config struct {
	Width  vg.Length
	Height vg.Length
	Type   ImageType
	Title  string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns an 8x6 inch PNG without title.
func DefaultConfig() Config {
	return Config{Width: 8 * vg.Inch, Height: 6 * vg.Inch, Type: PNG}
}

// WithSize sets the image size.
func WithSize(w, h vg.Length) Option {
	return func(cfg *Config) {
		if w > 0 && h > 0 {
			cfg.Width, cfg.Height = w, h
		}
	}
}

// WithType sets the output encoding.
func WithType(t ImageType) Option {
	return func(cfg *Config) {
		cfg.Type = t
	}
}

// WithTitle sets the title drawn above the top panel.
func WithTitle(title string) Option {
	return func(cfg *Config) {
		cfg.Title = title
	}
}

// FromNetwork returns the given parameters of n in its display format.
func FromNetwork(n *s2p.Network, params ...s2p.Param) ([]Series, error) {
	out := make([]Series, 0, len(params))
	for _, p := range params {
		tr, err := n.Get(p)
		if err != nil {
			return nil, err
		}
		out = append(out, Series{Name: p.String(), Trace: tr})
	}
	return out, nil
}

// Render draws every series against axis and writes the image to w. NaN and
// infinite samples, such as the dB value of an exact zero, are left out.
func Render(w io.Writer, axis *frequency.Axis, series []Series, opts ...Option) error {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Type != PNG && cfg.Type != SVG {
		return fmt.Errorf("%w: %q", ErrImageType, string(cfg.Type))
	}
	if len(series) == 0 {
		return ErrNoTraces
	}

	f := series[0].Trace.Format
	for _, s := range series {
		if s.Trace.Format != f {
			return fmt.Errorf("%w: %s and %s", ErrMixedFormats, f, s.Trace.Format)
		}
		if s.Trace.Len() != axis.Len() {
			return fmt.Errorf("%w: %s has %d points, axis has %d", ErrLengthMismatch, s.Name, s.Trace.Len(), axis.Len())
		}
	}

	top, bottom := plot.New(), plot.New()
	top.Title.Text = cfg.Title
	top.Legend.Top = true
	xLabel := fmt.Sprintf("Frequency (%s)", axis.DisplayUnit())
	top.X.Label.Text = xLabel
	bottom.X.Label.Text = xLabel
	top.Y.Label.Text, bottom.Y.Label.Text = labels(f, series[0].Trace.Unit)
	top.Add(plotter.NewGrid())
	bottom.Add(plotter.NewGrid())

	x := axis.Values()
	var drawn [2]int
	for i, s := range series {
		for row, ys := range [2][]float64{s.Trace.A, s.Trace.B} {
			pts := finitePoints(x, ys)
			if len(pts) == 0 {
				continue
			}
			line, err := plotter.NewLine(pts)
			if err != nil {
				return fmt.Errorf("plot: %s: %w", s.Name, err)
			}
			line.Color = plotutil.Color(i)
			if row == 0 {
				top.Add(line)
				top.Legend.Add(s.Name, line)
			} else {
				bottom.Add(line)
			}
			drawn[row]++
		}
	}
	if drawn[0] == 0 || drawn[1] == 0 {
		return ErrNoFiniteSamples
	}

	return write(w, cfg, [][]*plot.Plot{{top}, {bottom}})
}

func labels(f format.Format, unit format.AngleUnit) (top, bottom string) {
	switch f {
	case format.DB:
		return "Mag (dB)", fmt.Sprintf("Phase (%s)", unit)
	case format.MA:
		return "Mag", fmt.Sprintf("Phase (%s)", unit)
	default:
		return "Real", "Image"
	}
}

func finitePoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) || math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	return pts
}

func write(w io.Writer, cfg Config, plots [][]*plot.Plot) error {
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}

	var (
		c  vg.CanvasWriterTo
		dc draw.Canvas
	)
	switch cfg.Type {
	case SVG:
		svg := vgsvg.New(cfg.Width, cfg.Height)
		c, dc = svg, draw.New(svg)
	default:
		img := vgimg.New(cfg.Width, cfg.Height)
		c, dc = vgimg.PngCanvas{Canvas: img}, draw.New(img)
	}

	canvases := plot.Align(plots, tiles, dc)
	for i, row := range plots {
		for j, p := range row {
			p.Draw(canvases[i][j])
		}
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("plot: write %s: %w", cfg.Type, err)
	}
	return nil
}
