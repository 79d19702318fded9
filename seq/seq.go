// Package seq runs a fresh accumulator over a whole sequence and returns its
// final value. Every function here is a fold; the bool result is false when
// the statistic is undefined for the given input.
package seq

import (
	"iter"
	"slices"

	"github.com/talostrading/streamstats"
	"golang.org/x/exp/constraints"
)

// Fold feeds every element of xs into acc and returns acc's value.
func Fold[F constraints.Float](acc streamstats.Univariate, xs iter.Seq[F]) (float64, bool) {
	for x := range xs {
		acc.Add(float64(x))
	}
	return acc.Value()
}

// FoldPairs feeds every (x, y) of pairs into acc with weight 1 and returns
// acc's value.
func FoldPairs[F constraints.Float](acc streamstats.Bivariate, pairs iter.Seq2[F, F]) (float64, bool) {
	for x, y := range pairs {
		acc.AddPair(float64(x), float64(y))
	}
	return acc.Value()
}

func Sum[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewSum(), xs)
}

func Minimum[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewMinimum(), xs)
}

func Maximum[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewMaximum(), xs)
}

func Mean[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewMean(), xs)
}

func GeometricMean[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewGeometricMean(), xs)
}

// Variance is the sample variance.
func Variance[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewSampleVariance(), xs)
}

func PopulationVariance[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewPopulationVariance(), xs)
}

// StandardDeviation is the sample standard deviation.
func StandardDeviation[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewSampleStandardDeviation(), xs)
}

func PopulationStandardDeviation[F constraints.Float](xs iter.Seq[F]) (float64, bool) {
	return Fold(streamstats.NewPopulationStandardDeviation(), xs)
}

// PearsonCorrelation of a sequence of (x, y) pairs.
func PearsonCorrelation[F constraints.Float](pairs iter.Seq2[F, F]) (float64, bool) {
	return FoldPairs(streamstats.NewPearsonCorrelation(), pairs)
}

// Correlation is the Pearson correlation of two independently iterated
// sequences, paired element by element. It stops at the end of the shorter
// one.
func Correlation[F constraints.Float](xs, ys iter.Seq[F]) (float64, bool) {
	return PearsonCorrelation(Zip(xs, ys))
}

// Zip pairs xs and ys element by element until either is exhausted.
func Zip[F any](xs, ys iter.Seq[F]) iter.Seq2[F, F] {
	return func(yield func(F, F) bool) {
		nextY, stop := iter.Pull(ys)
		defer stop()

		for x := range xs {
			y, ok := nextY()
			if !ok || !yield(x, y) {
				return
			}
		}
	}
}

func SumOf[F constraints.Float](xs []F) (float64, bool) {
	return Sum(slices.Values(xs))
}

func MinimumOf[F constraints.Float](xs []F) (float64, bool) {
	return Minimum(slices.Values(xs))
}

func MaximumOf[F constraints.Float](xs []F) (float64, bool) {
	return Maximum(slices.Values(xs))
}

func MeanOf[F constraints.Float](xs []F) (float64, bool) {
	return Mean(slices.Values(xs))
}

func GeometricMeanOf[F constraints.Float](xs []F) (float64, bool) {
	return GeometricMean(slices.Values(xs))
}

func VarianceOf[F constraints.Float](xs []F) (float64, bool) {
	return Variance(slices.Values(xs))
}

func PopulationVarianceOf[F constraints.Float](xs []F) (float64, bool) {
	return PopulationVariance(slices.Values(xs))
}

func StandardDeviationOf[F constraints.Float](xs []F) (float64, bool) {
	return StandardDeviation(slices.Values(xs))
}

func PopulationStandardDeviationOf[F constraints.Float](xs []F) (float64, bool) {
	return PopulationStandardDeviation(slices.Values(xs))
}

// CorrelationOf pairs xs[i] with ys[i], ignoring the tail of the longer slice.
func CorrelationOf[F constraints.Float](xs, ys []F) (float64, bool) {
	return Correlation(slices.Values(xs), slices.Values(ys))
}
