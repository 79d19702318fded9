package streamstats

import "math"

// moments is the running state shared by the variance family: Welford's
// (1962) recurrence as given by Knuth. m2 is the sum of squared deviations
// from the running mean.
type moments struct {
	n    int
	mean float64
	m2   float64
}

func (m *moments) add(x float64) {
	m.n++
	delta := x - m.mean
	m.mean += delta / float64(m.n)
	m.m2 += delta * (x - m.mean)
}

func (m *moments) reset() {
	m.n = 0
	m.mean = 0
	m.m2 = 0
}

// sample returns m2/(n-1), defined for n > 1.
func (m *moments) sample() (float64, bool) {
	if m.n < 2 {
		return 0, false
	}
	return m.m2 / float64(m.n-1), true
}

// population returns m2/n, defined for n > 0.
func (m *moments) population() (float64, bool) {
	if m.n < 1 {
		return 0, false
	}
	return m.m2 / float64(m.n), true
}

func sqrt(v float64, ok bool) (float64, bool) {
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}

// SampleVariance is the unbiased variance estimate, M2/(n-1).
type SampleVariance struct {
	m moments
}

func NewSampleVariance() *SampleVariance {
	return &SampleVariance{}
}

func (v *SampleVariance) Add(x float64)          { v.m.add(x) }
func (v *SampleVariance) Value() (float64, bool) { return v.m.sample() }
func (v *SampleVariance) Count() int             { return v.m.n }
func (v *SampleVariance) Reset()                 { v.m.reset() }
func (v *SampleVariance) String() string         { return formatValue(v) }
func (v *SampleVariance) GoString() string       { return formatDebug("SampleVariance", v) }

// PopulationVariance treats the data seen as the whole population, M2/n.
type PopulationVariance struct {
	m moments
}

func NewPopulationVariance() *PopulationVariance {
	return &PopulationVariance{}
}

func (v *PopulationVariance) Add(x float64)          { v.m.add(x) }
func (v *PopulationVariance) Value() (float64, bool) { return v.m.population() }
func (v *PopulationVariance) Count() int             { return v.m.n }
func (v *PopulationVariance) Reset()                 { v.m.reset() }
func (v *PopulationVariance) String() string         { return formatValue(v) }
func (v *PopulationVariance) GoString() string       { return formatDebug("PopulationVariance", v) }

// SampleStandardDeviation is the square root of SampleVariance.
type SampleStandardDeviation struct {
	m moments
}

func NewSampleStandardDeviation() *SampleStandardDeviation {
	return &SampleStandardDeviation{}
}

func (s *SampleStandardDeviation) Add(x float64)          { s.m.add(x) }
func (s *SampleStandardDeviation) Value() (float64, bool) { return sqrt(s.m.sample()) }
func (s *SampleStandardDeviation) Count() int             { return s.m.n }
func (s *SampleStandardDeviation) Reset()                 { s.m.reset() }
func (s *SampleStandardDeviation) String() string         { return formatValue(s) }
func (s *SampleStandardDeviation) GoString() string {
	return formatDebug("SampleStandardDeviation", s)
}

// PopulationStandardDeviation is the square root of PopulationVariance.
type PopulationStandardDeviation struct {
	m moments
}

func NewPopulationStandardDeviation() *PopulationStandardDeviation {
	return &PopulationStandardDeviation{}
}

func (s *PopulationStandardDeviation) Add(x float64)          { s.m.add(x) }
func (s *PopulationStandardDeviation) Value() (float64, bool) { return sqrt(s.m.population()) }
func (s *PopulationStandardDeviation) Count() int             { return s.m.n }
func (s *PopulationStandardDeviation) Reset()                 { s.m.reset() }
func (s *PopulationStandardDeviation) String() string         { return formatValue(s) }
func (s *PopulationStandardDeviation) GoString() string {
	return formatDebug("PopulationStandardDeviation", s)
}
