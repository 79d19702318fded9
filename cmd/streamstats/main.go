// Command streamstats computes running statistics over numbers read from
// stdin or a file, in one pass and constant memory.
//
//	seq 1 100 | streamstats -stats mean,stddev,min,max
//	streamstats -mode pairs -in pairs.txt -report csv
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/felixge/fgprof"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "YAML config file; flags set explicitly override it")
	name       = flag.String("name", "stdin", "name shown in reports")
	input      = flag.String("in", "", "input file, stdin if empty or -")
	format     = flag.String("format", "text", "input format: text or binary")
	mode       = flag.String("mode", "univariate", "text input mode: univariate or pairs")
	stats      = flag.String("stats", "min,mean,max,stddev", "comma separated statistics to report")
	reportFmt  = flag.String("report", "plain", "report format: plain or csv")
	every      = flag.Int("n", 0, "report every n samples, 0 reports only at the end")
	reset      = flag.Bool("reset", false, "reset the statistics after each periodic report")
	histogram  = flag.Bool("hist", false, "also print a distribution histogram")
	histScale  = flag.String("hist-scale", "", "unit label of the histogram bins")
	histMul    = flag.Float64("hist-mul", 1, "multiplier from sample to histogram unit")
	pprofAddr  = flag.String("pprof", "", "serve fgprof on this address, e.g. localhost:6060")
	pinCPU     = flag.Int("cpu", -1, "pin the accumulating thread to this cpu, -1 to disable")
	debug      = flag.Bool("debug", false, "development logging")
)

// buildConfig layers explicitly set flags over the config file, which is
// itself layered over the defaults.
func buildConfig() (Config, error) {
	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			cfg.Name = *name
		case "in":
			cfg.Input = *input
		case "format":
			cfg.Format = *format
		case "mode":
			cfg.Mode = *mode
		case "stats":
			cfg.Stats = strings.Split(*stats, ",")
		case "report":
			cfg.Report = *reportFmt
		case "n":
			cfg.Every = *every
		case "reset":
			cfg.Reset = *reset
		case "hist":
			cfg.Histogram.Enabled = *histogram
		case "hist-scale":
			cfg.Histogram.Scale = *histScale
		case "hist-mul":
			cfg.Histogram.Multiplier = *histMul
		case "pprof":
			cfg.PprofAddr = *pprofAddr
		case "cpu":
			cfg.CPU = *pinCPU
		case "debug":
			cfg.Debug = *debug
		}
	})

	return cfg, cfg.Validate()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func servePprof(addr string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/debug/fgprof", fgprof.Handler())

	log.Info("serving fgprof", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("fgprof server stopped", zap.Error(err))
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "streamstats: %v\n", err)
		os.Exit(2)
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "streamstats: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.PprofAddr != "" {
		go servePprof(cfg.PprofAddr, log)
	}

	in, err := openInput(cfg.Input)
	if err != nil {
		log.Fatal("could not open input", zap.String("input", cfg.Input), zap.Error(err))
	}

	log.Debug("starting",
		zap.String("name", cfg.Name),
		zap.String("format", cfg.Format),
		zap.String("mode", cfg.Mode),
		zap.Strings("stats", cfg.Stats),
		zap.Int("every", cfg.Every),
	)

	err = run(cfg, in, os.Stdout, log)
	err = multierr.Append(err, in.Close())
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error("streamstats failed", zap.Error(e))
		}
		_ = log.Sync()
		os.Exit(1)
	}
}
