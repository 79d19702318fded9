package streamstats

import (
	"fmt"
	"strconv"
)

// Accumulator is a running statistic over a stream of data points.
//
// Value reports false while the statistic is undefined: no points were added,
// too few points were added for the statistic, or the input made it
// meaningless (e.g. a non-positive point fed to a GeometricMean).
type Accumulator interface {
	Value() (float64, bool)
	Count() int
	Reset()

	fmt.Stringer
	fmt.GoStringer
}

// Univariate accumulators ingest one point at a time.
type Univariate interface {
	Accumulator
	Add(x float64)
}

// Bivariate accumulators ingest (x, y) pairs, optionally weighted.
type Bivariate interface {
	Accumulator
	AddPair(x, y float64)
	AddWeighted(x, y, w float64)
}

const undefined = "undefined"

// Interfaces which the accumulators implement.
var (
	_ Univariate = &Sum{}
	_ Univariate = &Minimum{}
	_ Univariate = &Maximum{}
	_ Univariate = &Mean{}
	_ Univariate = &GeometricMean{}
	_ Univariate = &SampleVariance{}
	_ Univariate = &PopulationVariance{}
	_ Univariate = &SampleStandardDeviation{}
	_ Univariate = &PopulationStandardDeviation{}

	_ Bivariate = &PearsonCorrelation{}
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatValue is the plain rendering shared by all accumulators.
func formatValue(a Accumulator) string {
	if v, ok := a.Value(); ok {
		return formatFloat(v)
	}
	return undefined
}

// formatDebug is the debug rendering shared by all accumulators, e.g.
// Mean{value=0.5 count=4}.
func formatDebug(name string, a Accumulator) string {
	return fmt.Sprintf("%s{value=%s count=%d}", name, formatValue(a), a.Count())
}
