package winmodel

import (
	"testing"

	"nfl-survivor-go/models"

	"github.com/stretchr/testify/assert"
)

func srs(v float64) *float64 { return &v }

func TestClassifier_NilFallsBackToSRS(t *testing.T) {
	var c *Classifier
	home := &models.TeamWeekStats{SRS: srs(6)}
	away := &models.TeamWeekStats{SRS: srs(0)}

	pHome, pAway := c.Predict(home, away, false)
	expected := SRSFallback(6, 0, false, defaultFallbackScale)
	assert.InDelta(t, expected, pHome, 1e-9)
	assert.InDelta(t, 1-expected, pAway, 1e-9)
}

func TestClassifier_ProbabilitiesSumToOne(t *testing.T) {
	var c *Classifier
	home := &models.TeamWeekStats{SRS: srs(2)}
	away := &models.TeamWeekStats{SRS: srs(-3)}
	pHome, pAway := c.Predict(home, away, true)
	assert.InDelta(t, 1.0, pHome+pAway, 1e-9)
}

func TestStandardizer_ZeroVarianceFeatureDoesNotDivideByZero(t *testing.T) {
	vectors := [][]float64{{1, 5}, {1, 7}, {1, 9}}
	s := FitStandardizer(vectors)
	out := s.Transform([]float64{1, 7})
	assert.InDelta(t, 0, out[0], 1e-9)
}

func TestClassBalancedOversample_BalancesClasses(t *testing.T) {
	vectors := [][]float64{{1}, {2}, {3}, {4}, {5}}
	labels := []float64{1, 1, 1, 1, 0}
	out := classBalancedOversample(vectors, labels)

	var pos, neg int
	for _, y := range out.labels {
		if y > 0.5 {
			pos++
		} else {
			neg++
		}
	}
	assert.Equal(t, pos, neg)
}
