package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/talostrading/streamstats"
	"github.com/talostrading/streamstats/statserrors"
)

type Format uint8

const (
	Plain Format = iota
	CSV
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case CSV:
		return "csv"
	default:
		return "format_unknown"
	}
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "plain", "":
		return Plain, nil
	case "csv":
		return CSV, nil
	default:
		return 0, fmt.Errorf("%w: report format %q", statserrors.ErrInvalidConfig, s)
	}
}

// Column is one reported statistic.
type Column struct {
	Name string
	Acc  streamstats.Accumulator
}

// Printer writes one line per Report call with the current value of every
// column, e.g.
//
//	stats name=latency mean=0.5 stddev=0.47 samples=4
//
// or, in CSV form, a header line followed by one row per report.
type Printer struct {
	w       io.Writer
	name    string
	format  Format
	columns []Column

	header bool
}

func NewPrinter(w io.Writer, name string, format Format, columns ...Column) *Printer {
	return &Printer{
		w:       w,
		name:    name,
		format:  format,
		columns: columns,
		header:  format == CSV,
	}
}

// Samples is the largest count among the columns.
func (p *Printer) Samples() int {
	n := 0
	for _, c := range p.columns {
		if c.Acc.Count() > n {
			n = c.Acc.Count()
		}
	}
	return n
}

func (p *Printer) Report() error {
	var b strings.Builder

	switch p.format {
	case CSV:
		if p.header {
			b.WriteString("name")
			for _, c := range p.columns {
				b.WriteString("," + c.Name)
			}
			b.WriteString(",samples\n")
			p.header = false
		}
		b.WriteString(p.name)
		for _, c := range p.columns {
			b.WriteString("," + c.Acc.String())
		}
		fmt.Fprintf(&b, ",%d\n", p.Samples())
	default:
		b.WriteString("stats name=" + p.name)
		for _, c := range p.columns {
			b.WriteString(" " + c.Name + "=" + c.Acc.String())
		}
		fmt.Fprintf(&b, " samples=%d\n", p.Samples())
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Reset resets every column's accumulator.
func (p *Printer) Reset() {
	for _, c := range p.columns {
		c.Acc.Reset()
	}
}
