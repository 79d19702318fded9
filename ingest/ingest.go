// Package ingest drains sample sources into accumulators.
package ingest

import (
	"fmt"
	"io"

	"github.com/talostrading/streamstats"
	"github.com/talostrading/streamstats/codec/sample"
	"github.com/talostrading/streamstats/statserrors"
)

// Source yields samples until it returns io.EOF.
type Source interface {
	Next() (sample.Sample, error)
}

var _ Source = &sample.Decoder{}

// Feed adds every value of src to each of accs and returns the number of
// samples consumed. A clean io.EOF is not reported as an error.
func Feed(src Source, accs ...streamstats.Univariate) (int, error) {
	n := 0
	for {
		s, err := src.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := AddValue(s, accs...); err != nil {
			return n, err
		}
		n++
	}
}

// FeedPairs is Feed for bivariate accumulators.
func FeedPairs(src Source, accs ...streamstats.Bivariate) (int, error) {
	n := 0
	for {
		s, err := src.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := AddPair(s, accs...); err != nil {
			return n, err
		}
		n++
	}
}

func AddValue(s sample.Sample, accs ...streamstats.Univariate) error {
	if s.Kind != sample.KindValue {
		return fmt.Errorf("%w: got %s, want %s",
			statserrors.ErrKindMismatch, s.Kind, sample.KindValue)
	}
	for _, acc := range accs {
		acc.Add(s.X)
	}
	return nil
}

func AddPair(s sample.Sample, accs ...streamstats.Bivariate) error {
	if s.Kind != sample.KindPair && s.Kind != sample.KindWeightedPair {
		return fmt.Errorf("%w: got %s, want %s or %s",
			statserrors.ErrKindMismatch, s.Kind, sample.KindPair, sample.KindWeightedPair)
	}
	for _, acc := range accs {
		acc.AddWeighted(s.X, s.Y, s.W)
	}
	return nil
}

// Pump reads src until it is exhausted and sends every sample on out, then
// closes out. It is meant to run on its own goroutine while a single consumer
// owns the accumulators.
//
// Closing done makes Pump return nil at its next send, so a consumer that
// gives up early does not have to drain an unbounded source.
func Pump(src Source, out chan<- sample.Sample, done <-chan struct{}) error {
	defer close(out)

	for {
		s, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		select {
		case out <- s:
		case <-done:
			return nil
		}
	}
}
