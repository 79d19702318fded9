package main

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/talostrading/streamstats"
	"github.com/talostrading/streamstats/ingest"
	"github.com/talostrading/streamstats/report"
	"github.com/talostrading/streamstats/statserrors"
)

type HistogramConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Scale      string  `yaml:"scale"`
	Multiplier float64 `yaml:"multiplier"`
	MinPct     float64 `yaml:"min_pct"`
	Min        int64   `yaml:"min"`
	Max        int64   `yaml:"max"`
	Precision  int     `yaml:"precision"`
}

type Config struct {
	Name   string   `yaml:"name"`
	Input  string   `yaml:"input"`  // path, empty or "-" for stdin
	Format string   `yaml:"format"` // text or binary
	Mode   string   `yaml:"mode"`   // univariate or pairs, text only
	Stats  []string `yaml:"stats"`  // univariate mode only

	Report string `yaml:"report"` // plain or csv
	Every  int    `yaml:"every"`  // samples between reports, 0 reports only at the end
	Reset  bool   `yaml:"reset"`  // reset accumulators after each periodic report

	Histogram HistogramConfig `yaml:"histogram"`

	PprofAddr string `yaml:"pprof_addr"`
	CPU       int    `yaml:"cpu"` // -1 disables pinning
	Debug     bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Name:   "stdin",
		Format: "text",
		Mode:   "univariate",
		Stats:  []string{"min", "mean", "max", "stddev"},
		Report: "plain",
		Histogram: HistogramConfig{
			Multiplier: 1,
			MinPct:     0.1,
			Min:        1,
			Max:        1_000_000_000,
			Precision:  2,
		},
		CPU: -1,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys absent from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", statserrors.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() (err error) {
	if c.Format != "text" && c.Format != "binary" {
		err = multierr.Append(err, fmt.Errorf(
			"%w: input format %q", statserrors.ErrInvalidConfig, c.Format))
	}
	if _, perr := ingest.ParseMode(c.Mode); perr != nil {
		err = multierr.Append(err, perr)
	}
	if _, perr := report.ParseFormat(c.Report); perr != nil {
		err = multierr.Append(err, perr)
	}
	if c.Mode != "pairs" {
		if len(c.Stats) == 0 {
			err = multierr.Append(err, fmt.Errorf(
				"%w: no statistics selected", statserrors.ErrInvalidConfig))
		}
		for _, name := range c.Stats {
			if !slices.Contains(streamstats.Names, name) {
				err = multierr.Append(err, fmt.Errorf(
					"%w: unknown statistic %q, want one of %v",
					statserrors.ErrInvalidConfig, name, streamstats.Names))
			}
		}
	}
	if c.Every < 0 {
		err = multierr.Append(err, fmt.Errorf(
			"%w: every must not be negative", statserrors.ErrInvalidConfig))
	}
	if c.Histogram.Enabled {
		if c.Mode == "pairs" {
			err = multierr.Append(err, fmt.Errorf(
				"%w: histogram needs univariate mode", statserrors.ErrInvalidConfig))
		}
		if c.Histogram.Min < 1 || c.Histogram.Max <= c.Histogram.Min {
			err = multierr.Append(err, fmt.Errorf(
				"%w: histogram range [%d, %d]",
				statserrors.ErrInvalidConfig, c.Histogram.Min, c.Histogram.Max))
		}
		if c.Histogram.Precision < 1 || c.Histogram.Precision > 5 {
			err = multierr.Append(err, fmt.Errorf(
				"%w: histogram precision %d not in [1, 5]",
				statserrors.ErrInvalidConfig, c.Histogram.Precision))
		}
	}
	return err
}
