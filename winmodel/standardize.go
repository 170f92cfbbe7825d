package winmodel

import "math"

// Standardizer rescales each feature to zero mean, unit variance using
// statistics fit on the training set. Gradient descent on raw,
// differently-scaled DVOA/EPA/SRS features converges unevenly across
// dimensions; unlike the fallback's handcrafted constant, there is no
// principled "right" scale without seeing the data.
type Standardizer struct {
	Mean []float64
	Std  []float64
}

// FitStandardizer computes per-feature mean/std over a set of feature
// vectors. A zero-variance feature gets Std=1 so Transform doesn't
// divide by zero.
func FitStandardizer(vectors [][]float64) *Standardizer {
	if len(vectors) == 0 {
		return &Standardizer{}
	}
	n := len(vectors[0])
	mean := make([]float64, n)
	for _, v := range vectors {
		for i, x := range v {
			mean[i] += x
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}

	std := make([]float64, n)
	for _, v := range vectors {
		for i, x := range v {
			d := x - mean[i]
			std[i] += d * d
		}
	}
	for i := range std {
		std[i] = math.Sqrt(std[i] / float64(len(vectors)))
		if std[i] < 1e-9 {
			std[i] = 1
		}
	}
	return &Standardizer{Mean: mean, Std: std}
}

// Transform applies the fitted scale; an unfit standardizer is the
// identity transform.
func (s *Standardizer) Transform(v []float64) []float64 {
	if s == nil || len(s.Mean) == 0 {
		out := make([]float64, len(v))
		copy(out, v)
		return out
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = (x - s.Mean[i]) / s.Std[i]
	}
	return out
}
