package streamstats

// Short names of the univariate accumulators, in display order.
var Names = []string{
	"sum",
	"min",
	"max",
	"mean",
	"geomean",
	"var",
	"popvar",
	"stddev",
	"popstddev",
}

// ByName returns an empty univariate accumulator for one of Names.
func ByName(name string) (Univariate, bool) {
	switch name {
	case "sum":
		return NewSum(), true
	case "min":
		return NewMinimum(), true
	case "max":
		return NewMaximum(), true
	case "mean":
		return NewMean(), true
	case "geomean":
		return NewGeometricMean(), true
	case "var":
		return NewSampleVariance(), true
	case "popvar":
		return NewPopulationVariance(), true
	case "stddev":
		return NewSampleStandardDeviation(), true
	case "popstddev":
		return NewPopulationStandardDeviation(), true
	default:
		return nil, false
	}
}
