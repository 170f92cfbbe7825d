package winmodel

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics reports calibration quality on a scored dataset.
type Metrics struct {
	Brier   float64
	LogLoss float64
	N       int
}

// Evaluate computes Brier score and log-loss for calibrated
// predictions against binary labels, using gonum/stat for the
// underlying mean so the aggregation matches the library's numerically
// stable implementation rather than a hand-summed loop.
func Evaluate(predictions, labels []float64) Metrics {
	n := len(predictions)
	if n == 0 {
		return Metrics{}
	}
	sqErr := make([]float64, n)
	logLoss := make([]float64, n)
	const eps = 1e-15
	for i, p := range predictions {
		clamped := math.Min(math.Max(p, eps), 1-eps)
		d := clamped - labels[i]
		sqErr[i] = d * d
		if labels[i] > 0.5 {
			logLoss[i] = -math.Log(clamped)
		} else {
			logLoss[i] = -math.Log(1 - clamped)
		}
	}
	return Metrics{
		Brier:   stat.Mean(sqErr, nil),
		LogLoss: stat.Mean(logLoss, nil),
		N:       n,
	}
}
