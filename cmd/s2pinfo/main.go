// Command s2pinfo prints the S-parameters of a two-port Touchstone file.
//
// Usage:
//
//	s2pinfo [flags] file.s2p
//
// Examples:
//
//	s2pinfo amp.s2p
//	s2pinfo --format MA --angle rad --param S21 amp.s2p
//	s2pinfo --tparams --unit MHz filter.s2p
//	s2pinfo --compare before.s2p after.s2p
//	s2pinfo --plot amp.png amp.s2p
//
// Every flag can also be set through an S2P_ environment variable, for
// example S2P_FORMAT=RI, or in a file passed with --config.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/llemish/RF/internal/config"
	"github.com/llemish/RF/network/compare"
	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/plot"
	"github.com/llemish/RF/network/s2p"
	"github.com/llemish/RF/network/stats"
	"github.com/llemish/RF/network/touchstone"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := config.Flags()
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: s2pinfo [flags] file.s2p\n\n")
		fmt.Fprintf(stderr, "Prints the S-parameters of a two-port Touchstone file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  s2pinfo --format MA --param S21 amp.s2p\n")
		fmt.Fprintf(stderr, "  s2pinfo --compare before.s2p after.s2p\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	if err := inspect(fs.Arg(0), cfg, stdout, log); err != nil {
		log.Error().Err(err).Msg("s2pinfo failed")
		return 1
	}
	return 0
}

func inspect(path string, cfg *config.Config, w io.Writer, log zerolog.Logger) error {
	f, err := touchstone.ParseFile(path, touchstone.WithLogger(log))
	if err != nil {
		return err
	}
	n := f.Network
	if err := applyDisplay(n, cfg.Display); err != nil {
		return err
	}

	printHeader(w, path, f.Header, n)
	if err := printNetwork(w, n, cfg.Display.Params); err != nil {
		return err
	}
	if err := printSummary(w, n, cfg.Display.Params); err != nil {
		return err
	}

	if cfg.TParams {
		if err := printTParams(w, n); err != nil {
			return err
		}
	}

	if cfg.Compare.File != "" {
		if err := printComparison(w, n, cfg.Compare, log); err != nil {
			return err
		}
	}

	if cfg.Plot.File != "" {
		if err := writePlot(path, n, cfg); err != nil {
			return err
		}
		log.Info().Str("file", cfg.Plot.File).Msg("chart written")
	}
	return nil
}

func applyDisplay(n *s2p.Network, d config.DisplayConfig) error {
	if err := n.SetFormat(d.Format); err != nil {
		return err
	}
	if err := n.SetAngleUnit(d.Angle); err != nil {
		return err
	}
	ax := n.Frequency()
	if err := ax.SetUnit(d.Unit); err != nil {
		return err
	}
	ax.SetAngular(d.Angular)
	return nil
}

func printHeader(w io.Writer, path string, h touchstone.Header, n *s2p.Network) {
	ax := n.Frequency()
	fmt.Fprintf(w, "File:       %s\n", filepath.Base(path))
	fmt.Fprintf(w, "Version:    %s\n", h.Version)
	fmt.Fprintf(w, "Reference:  %g Ohm\n", h.Resistance)
	fmt.Fprintf(w, "Points:     %d\n", n.Len())
	fmt.Fprintf(w, "Range:      %g - %g %s\n\n", ax.Start(), ax.Stop(), ax.DisplayUnit())
}

func fieldLabel(f format.Format, field string, unit format.AngleUnit) string {
	switch {
	case field == format.FieldPhase:
		return fmt.Sprintf("%s [%s]", field, unit)
	case f == format.DB:
		return field + " [dB]"
	default:
		return field
	}
}

// writeTable prints the frequency column followed by two columns per trace.
func writeTable(w io.Writer, freq []float64, freqUnit string, names []string, traces []format.Trace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	head := []string{fmt.Sprintf("Freq [%s]", freqUnit)}
	for i, tr := range traces {
		for _, field := range tr.Keys() {
			head = append(head, names[i]+" "+fieldLabel(tr.Format, field, tr.Unit))
		}
	}
	rule := make([]string, len(head))
	for i, h := range head {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(head, "\t"))
	fmt.Fprintln(tw, strings.Join(rule, "\t"))

	for r, f := range freq {
		row := []string{fmt.Sprintf("%.6g", f)}
		for _, tr := range traces {
			row = append(row, fmt.Sprintf("%.4f", tr.A[r]), fmt.Sprintf("%.4f", tr.B[r]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func printNetwork(w io.Writer, n *s2p.Network, params []s2p.Param) error {
	names := make([]string, len(params))
	traces := make([]format.Trace, len(params))
	for i, p := range params {
		tr, err := n.Get(p)
		if err != nil {
			return err
		}
		names[i], traces[i] = p.String(), tr
	}
	ax := n.Frequency()
	return writeTable(w, ax.Values(), ax.DisplayUnit(), names, traces)
}

func printSummary(w io.Writer, n *s2p.Network, params []s2p.Param) error {
	ratio := n.Frequency().Unit().Ratio()
	unit := n.Frequency().Unit()

	fmt.Fprintf(w, "\nSummary:\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Param\tMax [dB]\tAt ["+string(unit)+"]\tMin [dB]\tAt ["+string(unit)+"]\tRipple [dB]")
	fmt.Fprintln(tw, "-----\t--------\t------\t--------\t------\t-----------")
	for _, p := range params {
		s, err := stats.Param(n, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.6g\t%.2f\t%.6g\t%.2f\n",
			p, s.MaxDB, s.MaxAt/ratio, s.MinDB, s.MinAt/ratio, s.RangeDB)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func printTParams(w io.Writer, n *s2p.Network) error {
	t, err := n.TParameters()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nT-parameters (RI):\n")

	names := []string{"T11", "T12", "T21", "T22"}
	traces := make([]format.Trace, len(names))
	for i, z := range [][]complex128{t.T11(), t.T12(), t.T21(), t.T22()} {
		traces[i] = format.DecomposeSlice(format.RI, z, n.AngleUnit())
	}
	ax := t.Frequency()
	return writeTable(w, ax.Values(), ax.DisplayUnit(), names, traces)
}

func printComparison(w io.Writer, n *s2p.Network, cc config.CompareConfig, log zerolog.Logger) error {
	other, err := touchstone.ParseFile(cc.File, touchstone.WithLogger(log))
	if err != nil {
		return err
	}

	opts := []compare.Option{compare.WithLogger(log)}
	if cc.Tolerance >= 0 {
		opts = append(opts, compare.WithTolerance(cc.Tolerance))
	}
	c, err := compare.Compare(n, other.Network, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nComparison with %s:\n", filepath.Base(cc.File))

	names := []string{"S21_1", "S21_2", "S21_diff", "S12_diff"}
	traces := make([]format.Trace, len(names))
	for i, name := range names {
		col, err := c.Get(name)
		if err != nil {
			return err
		}
		traces[i] = col.Trace
	}
	ax := c.Frequency()
	return writeTable(w, ax.Values(), ax.DisplayUnit(), names, traces)
}

func writePlot(path string, n *s2p.Network, cfg *config.Config) (err error) {
	series, err := plot.FromNetwork(n, cfg.Display.Params...)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.Plot.File)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return plot.Render(out, n.Frequency(), series,
		plot.WithType(cfg.Plot.Type),
		plot.WithTitle(filepath.Base(path)),
	)
}
