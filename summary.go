package streamstats

import "fmt"

// Result is a snapshot of a Summary. A field is only meaningful if its
// matching Has* flag is set.
type Result struct {
	N int

	Min    float64
	Avg    float64
	Max    float64
	StdDev float64

	HasAvg    bool // also covers Min and Max, which are defined together
	HasStdDev bool
}

func (r Result) String() string {
	f := func(v float64, ok bool) string {
		if !ok {
			return undefined
		}
		return formatFloat(v)
	}
	return fmt.Sprintf(
		"min/avg/max/stddev = %s/%s/%s/%s n=%d",
		f(r.Min, r.HasAvg), f(r.Avg, r.HasAvg), f(r.Max, r.HasAvg),
		f(r.StdDev, r.HasStdDev), r.N)
}

// Summary gives you min/avg/max/stddev in O(1) time and space. The zero value
// is ready to use.
type Summary struct {
	min    Minimum
	max    Maximum
	avg    Mean
	stddev SampleStandardDeviation
}

func NewSummary() *Summary {
	return &Summary{}
}

func (s *Summary) Add(xs ...float64) {
	for _, x := range xs {
		s.min.Add(x)
		s.max.Add(x)
		s.avg.Add(x)
		s.stddev.Add(x)
	}
}

func (s *Summary) Result() Result {
	var r Result
	r.N = s.avg.Count()
	r.Min, r.HasAvg = s.min.Value()
	r.Max, _ = s.max.Value()
	r.Avg, _ = s.avg.Value()
	r.StdDev, r.HasStdDev = s.stddev.Value()
	return r
}

func (s *Summary) Reset() {
	s.min.Reset()
	s.max.Reset()
	s.avg.Reset()
	s.stddev.Reset()
}

func (s *Summary) Len() int {
	return s.avg.Count()
}
