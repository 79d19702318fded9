package report

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talostrading/streamstats"
	"github.com/talostrading/streamstats/statserrors"
)

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer

	mean, stddev := streamstats.NewMean(), streamstats.NewSampleStandardDeviation()
	p := NewPrinter(&buf, "latency", Plain,
		Column{Name: "mean", Acc: mean},
		Column{Name: "stddev", Acc: stddev},
	)

	require.NoError(t, p.Report())
	mean.Add(1)
	stddev.Add(1)
	require.NoError(t, p.Report())
	mean.Add(3)
	stddev.Add(3)
	require.NoError(t, p.Report())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"stats name=latency mean=undefined stddev=undefined samples=0",
		"stats name=latency mean=1 stddev=undefined samples=1",
		"stats name=latency mean=2 stddev=1.4142135623730951 samples=2",
	}, lines)
}

func TestPrinterCSV(t *testing.T) {
	var buf bytes.Buffer

	sum := streamstats.NewSum()
	p := NewPrinter(&buf, "bytes", CSV, Column{Name: "sum", Acc: sum})

	sum.Add(5)
	require.NoError(t, p.Report())
	sum.Add(7)
	require.NoError(t, p.Report())

	assert.Equal(t, "name,sum,samples\nbytes,5,1\nbytes,12,2\n", buf.String())

	p.Reset()
	assert.Equal(t, 0, sum.Count())
	assert.Equal(t, 0, p.Samples())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, CSV, f)

	_, err = ParseFormat("json")
	assert.True(t, errors.Is(err, statserrors.ErrInvalidConfig))
}

func TestHistogram(t *testing.T) {
	var buf bytes.Buffer
	hist := NewHistogram(HistogramOpts{
		Name:       "sample",
		Scale:      "ms",
		Multiplier: 1000,
		MinPct:     0.1,
		Min:        1,
		Max:        100,
		Precision:  1,
		Writer:     &buf,
	})

	hist.Add(0.001, 0.001, 0.001, 0.001)
	hist.Add(0.002, 0.002)
	hist.Add(0.003)
	hist.Add(0.004)
	hist.Add(5) // 5000ms, out of range

	assert.Equal(t, int64(8), hist.Count())
	assert.Equal(t, int64(1), hist.Dropped())

	require.NoError(t, hist.Report())
	assert.Equal(t, 1, hist.Reported())

	out := buf.String()
	assert.Contains(t, out, "histogram report=1 name=sample samples=9 dropped=1 scale=ms")
	assert.Contains(t, out, "summary min/avg/max/stddev = 0.001/")
	assert.Contains(t, out, "|")

	hist.Reset()
	assert.Equal(t, int64(0), hist.Count())
	assert.Equal(t, int64(0), hist.Dropped())
}

func TestHistogramEmpty(t *testing.T) {
	var buf bytes.Buffer
	hist := NewHistogram(HistogramOpts{
		Name: "empty", Min: 1, Max: 1000, Precision: 2, Writer: &buf,
	})
	require.NoError(t, hist.Report())
	assert.Contains(t, buf.String(), "undefined")
}

func BenchmarkHistogram(b *testing.B) {
	hist := NewHistogram(HistogramOpts{
		Name:       "sample",
		Scale:      "ns",
		Multiplier: 1,
		MinPct:     0.1,
		Min:        1,
		Max:        1_000_000_000,
		Precision:  1,
		Writer:     io.Discard,
	})

	for i := 0; i < b.N; i++ {
		hist.Add(float64(1 + i%1000))
	}
}
