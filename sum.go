package streamstats

// Sum is the running total of all points.
type Sum struct {
	n   int
	sum float64
}

func NewSum() *Sum {
	return &Sum{}
}

func (s *Sum) Add(x float64) {
	s.n++
	s.sum += x
}

func (s *Sum) Value() (float64, bool) {
	if s.n == 0 {
		return 0, false
	}
	return s.sum, true
}

func (s *Sum) Count() int {
	return s.n
}

func (s *Sum) Reset() {
	s.n = 0
	s.sum = 0
}

func (s *Sum) String() string {
	return formatValue(s)
}

func (s *Sum) GoString() string {
	return formatDebug("Sum", s)
}
