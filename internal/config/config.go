package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/llemish/RF/network/format"
	"github.com/llemish/RF/network/frequency"
	"github.com/llemish/RF/network/plot"
	"github.com/llemish/RF/network/s2p"
)

// EnvPrefix prefixes environment overrides, e.g. S2P_FORMAT or S2P_LOG_LEVEL.
const EnvPrefix = "S2P"

// ErrInvalid reports a configuration value that failed validation.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings of the s2pinfo command.
type Config struct {
	Display  DisplayConfig
	Compare  CompareConfig
	Plot     PlotConfig
	TParams  bool
	LogLevel zerolog.Level
}

// DisplayConfig selects how networks are printed.
type DisplayConfig struct {
	Format  format.Format
	Angle   format.AngleUnit
	Unit    frequency.Unit
	Angular bool
	Params  []s2p.Param
}

// CompareConfig names a second file to compare against.
type CompareConfig struct {
	File string
	// Tolerance in hertz; negative derives it from the sweeps.
	Tolerance float64
}

// PlotConfig names an image file to render.
type PlotConfig struct {
	File string
	Type plot.ImageType
}

// Flags returns the command-line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("s2pinfo", pflag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, toml or json)")
	fs.String("format", "DB", "display format: DB, MA or RI")
	fs.String("angle", "deg", "phase unit: deg or rad")
	fs.String("unit", "GHz", "frequency unit: THz, GHz, MHz, kHz, Hz or mHz")
	fs.Bool("angular", false, "show angular frequency")
	fs.StringSlice("param", []string{"S11", "S21"}, "parameters to print")
	fs.Bool("tparams", false, "also print T-parameters")
	fs.String("compare", "", "second Touchstone file to compare against")
	fs.Float64("tolerance", -1, "frequency tolerance in Hz for --compare; negative derives it")
	fs.String("plot", "", "write a chart of the selected parameters to this file")
	fs.String("plot-type", "", "chart encoding: png or svg; defaults to the --plot extension")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	return fs
}

// Load resolves settings from, in increasing precedence, defaults, an
// optional config file, S2P_* environment variables and set flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("format", "DB")
	v.SetDefault("angle", "deg")
	v.SetDefault("unit", "GHz")
	v.SetDefault("angular", false)
	v.SetDefault("param", []string{"S11", "S21"})
	v.SetDefault("tparams", false)
	v.SetDefault("tolerance", -1.0)
	v.SetDefault("log-level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	var err error

	if cfg.Display.Format, err = format.ParseFormat(v.GetString("format")); err != nil {
		return nil, fmt.Errorf("%w: format: %w", ErrInvalid, err)
	}
	if cfg.Display.Angle, err = format.ParseAngleUnit(v.GetString("angle")); err != nil {
		return nil, fmt.Errorf("%w: angle: %w", ErrInvalid, err)
	}
	if cfg.Display.Unit, err = frequency.ParseUnit(v.GetString("unit")); err != nil {
		return nil, fmt.Errorf("%w: unit: %w", ErrInvalid, err)
	}
	cfg.Display.Angular = v.GetBool("angular")

	for _, item := range v.GetStringSlice("param") {
		for _, name := range strings.Split(item, ",") {
			if name = strings.TrimSpace(name); name == "" {
				continue
			}
			p, err := s2p.ParseParam(name)
			if err != nil {
				return nil, fmt.Errorf("%w: param: %w", ErrInvalid, err)
			}
			cfg.Display.Params = append(cfg.Display.Params, p)
		}
	}
	if len(cfg.Display.Params) == 0 {
		return nil, fmt.Errorf("%w: param: at least one parameter is required", ErrInvalid)
	}

	cfg.TParams = v.GetBool("tparams")
	cfg.Compare.File = v.GetString("compare")
	cfg.Compare.Tolerance = v.GetFloat64("tolerance")

	cfg.Plot.File = v.GetString("plot")
	cfg.Plot.Type = plot.ImageType(strings.ToLower(v.GetString("plot-type")))
	if cfg.Plot.Type == "" {
		cfg.Plot.Type = plot.PNG
		if strings.EqualFold(filepath.Ext(cfg.Plot.File), ".svg") {
			cfg.Plot.Type = plot.SVG
		}
	}
	if cfg.Plot.Type != plot.PNG && cfg.Plot.Type != plot.SVG {
		return nil, fmt.Errorf("%w: plot-type: %q", ErrInvalid, string(cfg.Plot.Type))
	}

	if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(v.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("%w: log-level: %w", ErrInvalid, err)
	}

	return &cfg, nil
}
