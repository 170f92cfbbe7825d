package winmodel

import (
	"fmt"
	"math"
)

// logisticIters/logisticLR/logisticL2 control the batch gradient
// descent fit below. These values were tuned against the holdout
// Brier score on a full season of standardized, class-balanced
// matchup features; they are not exposed as knobs because nothing in
// this codebase needs to vary them per call.
const (
	logisticIters = 400
	logisticLR    = 0.15
	logisticL2    = 1e-3
)

// linearLogistic is a from-scratch L2-regularized logistic regression
// fit by batch gradient descent. Unlike a black-box classifier fit
// through a library's Predict contract (which hands back only the
// discrete predicted class), this keeps the fitted weight vector
// around so PredictOne can return the continuous decision score
// w·x+b that Platt scaling needs to calibrate a graded probability.
type linearLogistic struct {
	weights []float64
	bias    float64
}

// fitLinearLogistic fits weights and a bias term against standardized
// feature rows and 0/1 labels.
func fitLinearLogistic(rows [][]float64, labels []float64) (*linearLogistic, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no training rows")
	}
	nFeatures := len(rows[0])
	w := make([]float64, nFeatures)
	var b float64
	n := float64(len(rows))

	for iter := 0; iter < logisticIters; iter++ {
		gradW := make([]float64, nFeatures)
		var gradB float64
		for i, x := range rows {
			z := dot(w, x) + b
			p := sigmoid(z)
			err := p - labels[i]
			for k := range w {
				gradW[k] += err * x[k]
			}
			gradB += err
		}
		for k := range w {
			w[k] -= logisticLR * (gradW[k]/n + logisticL2*w[k])
		}
		b -= logisticLR * gradB / n
	}

	return &linearLogistic{weights: w, bias: b}, nil
}

// PredictOne returns the model's raw (uncalibrated) linear decision
// score w·x+b for a single standardized feature row. The caller feeds
// this through Platt scaling to get a calibrated probability; unlike a
// discrete class label, this score varies continuously with the
// matchup margin.
func (m *linearLogistic) PredictOne(row []float64) (float64, error) {
	if len(row) != len(m.weights) {
		return 0, fmt.Errorf("feature row length %d does not match trained weight count %d", len(row), len(m.weights))
	}
	return dot(m.weights, row) + m.bias, nil
}

func sigmoid(z float64) float64 {
	if z > 20 {
		return 1.0
	}
	if z < -20 {
		return 0.0
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
