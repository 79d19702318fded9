package streamstats

import "math"

// PearsonCorrelation is the running (weighted) Pearson correlation
// coefficient of (x, y) pairs.
//
// varX, varY and r are weighted sums of squared deviations and of cross
// products. Their updates must use the weight sum from before the current
// pair while the means move with the weight sum after it; swapping the two
// corrupts the covariance.
type PearsonCorrelation struct {
	n         int
	weightSum float64
	meanX     float64
	meanY     float64
	varX      float64
	varY      float64
	r         float64
}

func NewPearsonCorrelation() *PearsonCorrelation {
	return &PearsonCorrelation{}
}

// AddPair adds (x, y) with weight 1.
func (p *PearsonCorrelation) AddPair(x, y float64) {
	p.AddWeighted(x, y, 1)
}

// AddWeighted adds (x, y) with weight w. Weights are not validated; a zero
// first weight makes every later value NaN.
func (p *PearsonCorrelation) AddWeighted(x, y, w float64) {
	p.n++
	weightSum := p.weightSum + w

	deltaX := x - p.meanX
	scaleX := deltaX * w / weightSum
	p.varX += scaleX * deltaX * p.weightSum
	p.meanX += scaleX

	deltaY := y - p.meanY
	scaleY := deltaY * w / weightSum
	p.meanY += scaleY
	p.varY += scaleY * deltaY * p.weightSum

	// With unit weights p.weightSum/weightSum is (n-1)/n.
	p.r += deltaX * deltaY * w * p.weightSum / weightSum

	p.weightSum = weightSum
}

func (p *PearsonCorrelation) Value() (float64, bool) {
	if p.n < 2 {
		return 0, false
	}
	return p.r / math.Sqrt(p.varX*p.varY), true
}

func (p *PearsonCorrelation) Count() int {
	return p.n
}

// Weight returns the sum of the weights of all pairs.
func (p *PearsonCorrelation) Weight() float64 {
	return p.weightSum
}

func (p *PearsonCorrelation) Reset() {
	*p = PearsonCorrelation{}
}

func (p *PearsonCorrelation) String() string {
	return formatValue(p)
}

func (p *PearsonCorrelation) GoString() string {
	return formatDebug("PearsonCorrelation", p)
}
