package winmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_PerfectPredictionsZeroBrier(t *testing.T) {
	m := Evaluate([]float64{1, 0, 1, 0}, []float64{1, 0, 1, 0})
	assert.InDelta(t, 0, m.Brier, 1e-9)
	assert.Equal(t, 4, m.N)
}

func TestEvaluate_WorstCaseHighBrier(t *testing.T) {
	m := Evaluate([]float64{0, 1}, []float64{1, 0})
	assert.InDelta(t, 1.0, m.Brier, 1e-9)
}

func TestEvaluate_Empty(t *testing.T) {
	m := Evaluate(nil, nil)
	assert.Zero(t, m.N)
	assert.Zero(t, m.Brier)
}
