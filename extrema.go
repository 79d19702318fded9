package streamstats

import "math"

// Minimum tracks the smallest point seen.
//
// NaN points are counted but never replace the running minimum since every
// comparison against NaN is false. This is plain IEEE 754 behavior and is not
// corrected.
type Minimum struct {
	n   int
	min float64
}

// NewMinimum returns an empty Minimum. The zero value is also empty.
func NewMinimum() *Minimum {
	m := &Minimum{}
	m.Reset()
	return m
}

func (m *Minimum) Add(x float64) {
	if m.n == 0 {
		m.min = math.Inf(1)
	}
	m.n++
	if x < m.min {
		m.min = x
	}
}

func (m *Minimum) Value() (float64, bool) {
	if m.n == 0 {
		return 0, false
	}
	return m.min, true
}

func (m *Minimum) Count() int {
	return m.n
}

func (m *Minimum) Reset() {
	m.n = 0
	m.min = math.Inf(1)
}

func (m *Minimum) String() string {
	return formatValue(m)
}

func (m *Minimum) GoString() string {
	return formatDebug("Minimum", m)
}

// Maximum tracks the largest point seen. NaN points behave as for Minimum.
type Maximum struct {
	n   int
	max float64
}

// NewMaximum returns an empty Maximum. The zero value is also empty.
func NewMaximum() *Maximum {
	m := &Maximum{}
	m.Reset()
	return m
}

func (m *Maximum) Add(x float64) {
	if m.n == 0 {
		m.max = math.Inf(-1)
	}
	m.n++
	if x > m.max {
		m.max = x
	}
}

func (m *Maximum) Value() (float64, bool) {
	if m.n == 0 {
		return 0, false
	}
	return m.max, true
}

func (m *Maximum) Count() int {
	return m.n
}

func (m *Maximum) Reset() {
	m.n = 0
	m.max = math.Inf(-1)
}

func (m *Maximum) String() string {
	return formatValue(m)
}

func (m *Maximum) GoString() string {
	return formatDebug("Maximum", m)
}
