package streamstats

import "math"

// Mean is the running arithmetic mean.
//
// The mean is updated in place, mean += (x - mean) / n, so no running sum is
// kept that could overflow or lose precision on long or skewed streams.
type Mean struct {
	n    int
	mean float64
}

func NewMean() *Mean {
	return &Mean{}
}

func (m *Mean) Add(x float64) {
	m.n++
	m.mean += (x - m.mean) / float64(m.n)
}

func (m *Mean) Value() (float64, bool) {
	if m.n == 0 {
		return 0, false
	}
	return m.mean, true
}

func (m *Mean) Count() int {
	return m.n
}

func (m *Mean) Reset() {
	m.n = 0
	m.mean = 0
}

func (m *Mean) String() string {
	return formatValue(m)
}

func (m *Mean) GoString() string {
	return formatDebug("Mean", m)
}

// GeometricMean is the n-th root of the product of n positive points.
//
// A single point x <= 0 makes the accumulator invalid until Reset; later
// points are still counted but Value stays undefined.
//
// The running product is kept as is, so long streams can leave float64
// range: Value is then +Inf (e.g. 400 points of 10) or 0 for points below 1.
// Callers with such streams should average logarithms with a Mean instead.
type GeometricMean struct {
	n       int
	product float64
	invalid bool
}

// NewGeometricMean returns an empty GeometricMean. The zero value is also
// empty.
func NewGeometricMean() *GeometricMean {
	g := &GeometricMean{}
	g.Reset()
	return g
}

func (g *GeometricMean) Add(x float64) {
	if g.n == 0 {
		g.product = 1
	}
	g.n++
	if x <= 0 {
		g.invalid = true
	}
	g.product *= x
}

func (g *GeometricMean) Value() (float64, bool) {
	if g.n == 0 || g.invalid {
		return 0, false
	}
	return math.Pow(g.product, 1/float64(g.n)), true
}

func (g *GeometricMean) Count() int {
	return g.n
}

// Invalid reports whether a non-positive point was added since the last Reset.
func (g *GeometricMean) Invalid() bool {
	return g.invalid
}

func (g *GeometricMean) Reset() {
	g.n = 0
	g.product = 1
	g.invalid = false
}

func (g *GeometricMean) String() string {
	return formatValue(g)
}

func (g *GeometricMean) GoString() string {
	return formatDebug("GeometricMean", g)
}
