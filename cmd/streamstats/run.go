package main

import (
	"io"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/talostrading/streamstats"
	"github.com/talostrading/streamstats/codec/sample"
	"github.com/talostrading/streamstats/ingest"
	"github.com/talostrading/streamstats/internal/cpu"
	"github.com/talostrading/streamstats/report"
)

const backlog = 1024

// pipeline owns every accumulator. Samples reach it from a single reader
// goroutine over a channel.
type pipeline struct {
	cfg Config
	log *zap.Logger

	univariate []streamstats.Univariate
	pearson    *streamstats.PearsonCorrelation
	printer    *report.Printer
	hist       *report.Histogram

	n int
}

func newPipeline(cfg Config, out io.Writer, log *zap.Logger) *pipeline {
	p := &pipeline{cfg: cfg, log: log}

	format, _ := report.ParseFormat(cfg.Report)

	var columns []report.Column
	if cfg.Mode == "pairs" {
		p.pearson = streamstats.NewPearsonCorrelation()
		columns = append(columns, report.Column{Name: "pearson", Acc: p.pearson})
	} else {
		for _, name := range cfg.Stats {
			acc, _ := streamstats.ByName(name)
			p.univariate = append(p.univariate, acc)
			columns = append(columns, report.Column{Name: name, Acc: acc})
		}
	}
	p.printer = report.NewPrinter(out, cfg.Name, format, columns...)

	if cfg.Histogram.Enabled {
		p.hist = report.NewHistogram(report.HistogramOpts{
			Name:       cfg.Name,
			Scale:      cfg.Histogram.Scale,
			Multiplier: cfg.Histogram.Multiplier,
			MinPct:     cfg.Histogram.MinPct,
			Min:        cfg.Histogram.Min,
			Max:        cfg.Histogram.Max,
			Precision:  cfg.Histogram.Precision,
			Writer:     out,
		})
	}

	return p
}

func (p *pipeline) add(s sample.Sample) error {
	if p.pearson != nil {
		return ingest.AddPair(s, p.pearson)
	}
	if err := ingest.AddValue(s, p.univariate...); err != nil {
		return err
	}
	if p.hist != nil {
		p.hist.Add(s.X)
	}
	return nil
}

func (p *pipeline) report() (err error) {
	err = p.printer.Report()
	if p.hist != nil {
		err = multierr.Append(err, p.hist.Report())
	}
	return err
}

func (p *pipeline) reset() {
	p.printer.Reset()
	if p.hist != nil {
		p.hist.Reset()
	}
}

func newSource(cfg Config, in io.Reader) ingest.Source {
	if cfg.Format == "binary" {
		return sample.NewDecoder(in)
	}
	mode, _ := ingest.ParseMode(cfg.Mode)
	return ingest.NewTextDecoder(in, mode)
}

// run consumes in until EOF or the first error and writes reports to out.
// cfg must be valid. On a rejected sample or a failed report run returns
// without waiting for the rest of the input.
func run(cfg Config, in io.Reader, out io.Writer, log *zap.Logger) (err error) {
	p := newPipeline(cfg, out, log)

	samples := make(chan sample.Sample, backlog)
	pumped := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		pumped <- ingest.Pump(newSource(cfg, in), samples, done)
	}()

	if cfg.CPU >= 0 {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if perr := cpu.PinTo(cfg.CPU); perr != nil {
			log.Warn("could not pin to cpu", zap.Int("cpu", cfg.CPU), zap.Error(perr))
		} else {
			log.Debug("pinned to cpu", zap.Int("cpu", cfg.CPU))
		}
	}

	for s := range samples {
		if err = p.add(s); err != nil {
			log.Error("rejected sample", zap.Int("index", p.n), zap.Error(err))
			return multierr.Append(err, p.report())
		}
		p.n++

		if cfg.Every > 0 && p.n%cfg.Every == 0 {
			if err = p.report(); err != nil {
				log.Error("report failed", zap.Int("samples", p.n), zap.Error(err))
				return err
			}
			if cfg.Reset {
				p.reset()
			}
		}
	}

	if perr := <-pumped; perr != nil {
		log.Error("input failed", zap.Int("samples", p.n), zap.Error(perr))
		err = perr
	}

	log.Debug("input done", zap.Int("samples", p.n))

	if cfg.Every == 0 || p.n == 0 || p.n%cfg.Every != 0 {
		err = multierr.Append(err, p.report())
	}
	return err
}
