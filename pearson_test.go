package streamstats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weightedCorrelation is the direct two-pass weighted Pearson coefficient.
func weightedCorrelation(xs, ys, ws []float64) float64 {
	var sw, mx, my float64
	for i := range xs {
		sw += ws[i]
		mx += ws[i] * xs[i]
		my += ws[i] * ys[i]
	}
	mx /= sw
	my /= sw

	var cxy, cxx, cyy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		cxy += ws[i] * dx * dy
		cxx += ws[i] * dx * dx
		cyy += ws[i] * dy * dy
	}
	return cxy / math.Sqrt(cxx*cyy)
}

func TestPearsonLinear(t *testing.T) {
	up, down := NewPearsonCorrelation(), NewPearsonCorrelation()
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		up.AddPair(x, 2*x+3)
		down.AddPair(x, -x)
	}

	v, ok := up.Value()
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9)

	v, ok = down.Value()
	require.True(t, ok)
	assert.InDelta(t, -1.0, v, 1e-9)
}

func TestPearsonUndefined(t *testing.T) {
	p := NewPearsonCorrelation()
	p.AddPair(1, 2)

	_, ok := p.Value()
	assert.False(t, ok)
	assert.Equal(t, "PearsonCorrelation{value=undefined count=1}", p.GoString())

	p.AddPair(2, 5)
	_, ok = p.Value()
	assert.True(t, ok)
}

func TestPearsonAgainstDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	n := 500
	xs, ys, ones := make([]float64, n), make([]float64, n), make([]float64, n)
	p := NewPearsonCorrelation()
	for i := 0; i < n; i++ {
		xs[i] = rng.NormFloat64() * 10
		ys[i] = 0.3*xs[i] + rng.NormFloat64()*5
		ones[i] = 1
		p.AddPair(xs[i], ys[i])
	}

	v, ok := p.Value()
	require.True(t, ok)
	relEqual(t, weightedCorrelation(xs, ys, ones), v)
	assert.Equal(t, float64(n), p.Weight())
}

func TestPearsonWeightedAgainstDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(22))

	n := 500
	xs, ys, ws := make([]float64, n), make([]float64, n), make([]float64, n)
	p := NewPearsonCorrelation()
	for i := 0; i < n; i++ {
		xs[i] = rng.Float64() * 100
		ys[i] = math.Sqrt(xs[i]) + rng.NormFloat64()
		ws[i] = 0.1 + rng.Float64()*5
		p.AddWeighted(xs[i], ys[i], ws[i])
	}

	v, ok := p.Value()
	require.True(t, ok)
	relEqual(t, weightedCorrelation(xs, ys, ws), v)
}

func TestPearsonWeightIsRepetition(t *testing.T) {
	pairs := [][2]float64{{1, 3}, {2, 1}, {4, 9}, {5, 4}, {7, 8}}
	weights := []int{3, 1, 2, 5, 1}

	weighted, repeated := NewPearsonCorrelation(), NewPearsonCorrelation()
	for i, xy := range pairs {
		weighted.AddWeighted(xy[0], xy[1], float64(weights[i]))
		for j := 0; j < weights[i]; j++ {
			repeated.AddPair(xy[0], xy[1])
		}
	}

	v, _ := weighted.Value()
	w, _ := repeated.Value()
	relEqual(t, w, v)
}

func TestPearsonUniformWeight(t *testing.T) {
	unit, scaled := NewPearsonCorrelation(), NewPearsonCorrelation()
	for i := 0; i < 50; i++ {
		x := float64(i)
		y := math.Cos(x)
		unit.AddPair(x, y)
		scaled.AddWeighted(x, y, 2.5)
	}

	v, _ := unit.Value()
	w, _ := scaled.Value()
	relEqual(t, v, w)
}

func TestPearsonPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	n := 200
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64()
		ys[i] = xs[i]*xs[i] + rng.Float64()*0.1
	}
	perm := rng.Perm(n)

	a, b := NewPearsonCorrelation(), NewPearsonCorrelation()
	for i := 0; i < n; i++ {
		a.AddPair(xs[i], ys[i])
		b.AddPair(xs[perm[i]], ys[perm[i]])
	}

	v, _ := a.Value()
	w, _ := b.Value()
	relEqual(t, v, w)
}

func TestPearsonConstantIsNaN(t *testing.T) {
	p := NewPearsonCorrelation()
	p.AddPair(1, 5)
	p.AddPair(2, 5)

	v, ok := p.Value()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(v))
}
