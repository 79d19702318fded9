package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/talostrading/streamstats"
)

type HistogramOpts struct {
	Name  string
	Scale string // unit label, e.g. "us"

	// Multiplier converts a sample into the histogram's integer domain,
	// e.g. 1e6 for samples in seconds shown in microseconds.
	Multiplier float64

	MinPct    float64 // bins holding less than this share are not drawn
	Min       int64
	Max       int64
	Precision int
	Writer    io.Writer
}

// Histogram draws the distribution of float samples as a text bar chart next
// to an exact min/avg/max/stddev summary. The bins are approximate; the
// summary is computed by a streamstats.Summary.
type Histogram struct {
	opts HistogramOpts

	hdr     *hdrhistogram.Histogram
	summary *streamstats.Summary
	tabw    *tabwriter.Writer

	dropped int64
	n       int
}

func NewHistogram(opts HistogramOpts) *Histogram {
	if opts.Multiplier == 0 {
		opts.Multiplier = 1
	}
	return &Histogram{
		opts:    opts,
		hdr:     hdrhistogram.New(opts.Min, opts.Max, opts.Precision),
		summary: streamstats.NewSummary(),
		tabw:    tabwriter.NewWriter(opts.Writer, 2, 2, 2, byte(' '), 0),
	}
}

func (h *Histogram) Add(xs ...float64) {
	for _, x := range xs {
		h.summary.Add(x)

		v := math.Round(x * h.opts.Multiplier)
		if math.IsNaN(v) || v < float64(h.opts.Min) || v > float64(h.opts.Max) {
			h.dropped++
			continue
		}
		if err := h.hdr.RecordValue(int64(v)); err != nil {
			h.dropped++
		}
	}
}

// Dropped returns the number of samples outside [Min, Max] after scaling.
// They still count towards the summary.
func (h *Histogram) Dropped() int64 {
	return h.dropped
}

func (h *Histogram) Count() int64 {
	return h.hdr.TotalCount()
}

// Reported returns the number of reports written so far.
func (h *Histogram) Reported() int {
	return h.n
}

func (h *Histogram) Reset() {
	h.hdr.Reset()
	h.summary.Reset()
	h.dropped = 0
}

func (h *Histogram) Report() error {
	if h.opts.Writer == nil {
		return nil
	}
	h.n++

	fmt.Fprint(h.opts.Writer,
		"----------------------------------------------\n")
	fmt.Fprintf(h.opts.Writer,
		"histogram report=%d name=%s samples=%d dropped=%d scale=%s\n",
		h.n, h.opts.Name, h.summary.Len(), h.dropped, h.opts.Scale)
	fmt.Fprintf(h.opts.Writer, "summary %s\n\n", h.summary.Result())

	total := h.hdr.TotalCount()
	if total == 0 {
		return nil
	}

	var minBinCount, maxBinCount int64 = math.MaxInt64, math.MinInt64
	for _, bin := range h.hdr.Distribution() {
		pct := float64(bin.Count) * 100.0 / float64(total)
		if bin.Count == 0 || pct < h.opts.MinPct {
			continue
		}
		if bin.Count < minBinCount {
			minBinCount = bin.Count
		}
		if bin.Count > maxBinCount {
			maxBinCount = bin.Count
		}
	}

	for _, bin := range h.hdr.Distribution() {
		pct := float64(bin.Count) * 100.0 / float64(total)
		if bin.Count == 0 || pct < h.opts.MinPct {
			continue
		}

		barSize := 1
		if maxBinCount > minBinCount {
			fraction := float64(bin.Count-minBinCount) /
				float64(maxBinCount-minBinCount)
			barSize = max(1, int(math.Ceil(fraction*10)))
		}

		to := bin.To
		if bin.From == to {
			to++
		}

		fmt.Fprintf(h.tabw,
			"%d-%d %s\t%.3g%%\t%s\t%s\n",
			bin.From, to,
			h.opts.Scale,
			pct,
			strings.Repeat("|", barSize),
			strconv.FormatInt(bin.Count, 10),
		)
	}

	return h.tabw.Flush()
}
