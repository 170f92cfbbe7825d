package winmodel

import (
	"nfl-survivor-go/engineerrors"
	"nfl-survivor-go/features"
	"nfl-survivor-go/models"
)

// minTrainingSamples below this, Train returns InsufficientData rather
// than fit a classifier nobody should trust.
const minTrainingSamples = 100

// Classifier is the immutable value a loaded win-probability model
// becomes once trained: standardizer, linear logistic regression, and
// Platt calibrator travel together and are never mutated after Train
// returns. A nil *Classifier is a legal "no model loaded" value: Predict
// and Batch on it fall back to the deterministic SRS logistic, and
// ToSnapshot returns an empty Snapshot.
type Classifier struct {
	standardizer  *Standardizer
	linear        *linearLogistic
	platt         *plattScaler
	fallbackScale float64
	TrainMetrics  Metrics
	ValMetrics    Metrics
}

// Predict returns (p_home, p_away) for one matchup. A nil receiver (no
// trained model) or a classifier whose logistic regression failed to
// train both fall through to the deterministic SRS-logistic fallback,
// which must always be available as a last resort.
func (c *Classifier) Predict(home, away *models.TeamWeekStats, neutral bool) (pHome, pAway float64) {
	if c == nil || c.linear == nil {
		p := SRSFallback(home.SRSOr0(), away.SRSOr0(), neutral, defaultFallbackScale)
		return p, 1 - p
	}

	vec := features.Vector(home, away, neutral)
	scaled := c.standardizer.Transform(vec[:])

	score, err := c.linear.PredictOne(scaled)
	if err != nil {
		p := SRSFallback(home.SRSOr0(), away.SRSOr0(), neutral, c.fallbackScale)
		return p, 1 - p
	}

	p := c.platt.Transform(score)
	return p, 1 - p
}

// Batch scores a list of matchups independently, preserving order.
func (c *Classifier) Batch(matchups []Matchup) []float64 {
	out := make([]float64, len(matchups))
	for i, m := range matchups {
		pHome, _ := c.Predict(m.StatBundle.Home, m.StatBundle.Away, m.Neutral)
		out[i] = pHome
	}
	return out
}

// Train fits a class-balanced, L2-regularized logistic regression (by
// batch gradient descent, so its weight vector stays directly
// accessible for scoring) on standardized features, then calibrates
// its output with 5-fold cross-validated Platt scaling. It reports
// metrics on the training fold and, if provided, a held-out
// validation set.
func Train(samples []features.TrainingSample, validation []features.TrainingSample, fallbackScale float64) (*Classifier, error) {
	if len(samples) < minTrainingSamples {
		return nil, engineerrors.InsufficientData(
			"win-probability training set below minimum sample count",
			"need at least 100 samples")
	}

	vectors := make([][]float64, len(samples))
	labels := make([]float64, len(samples))
	for i, s := range samples {
		v := make([]float64, features.VectorSize)
		copy(v, s.Features[:])
		vectors[i] = v
		labels[i] = s.Label
	}

	standardizer := FitStandardizer(vectors)
	scaled := make([][]float64, len(vectors))
	for i, v := range vectors {
		scaled[i] = standardizer.Transform(v)
	}

	weighted := classBalancedOversample(scaled, labels)

	linearModel, err := fitLinearLogistic(weighted.features, weighted.labels)
	if err != nil {
		return nil, err
	}

	rawScores := make([]float64, len(scaled))
	for i, v := range scaled {
		score, perr := linearModel.PredictOne(v)
		if perr != nil {
			score = 0
		}
		rawScores[i] = score
	}

	platt := fitPlattCV(rawScores, labels, 5)

	clf := &Classifier{
		standardizer:  standardizer,
		linear:        linearModel,
		platt:         platt,
		fallbackScale: fallbackScale,
	}

	trainPreds := make([]float64, len(rawScores))
	for i, s := range rawScores {
		trainPreds[i] = platt.Transform(s)
	}
	clf.TrainMetrics = Evaluate(trainPreds, labels)

	if len(validation) > 0 {
		valPreds := make([]float64, len(validation))
		valLabels := make([]float64, len(validation))
		for i, s := range validation {
			v := standardizer.Transform(s.Features[:])
			score, perr := linearModel.PredictOne(v)
			if perr != nil {
				score = 0
			}
			valPreds[i] = platt.Transform(score)
			valLabels[i] = s.Label
		}
		clf.ValMetrics = Evaluate(valPreds, valLabels)
	}

	return clf, nil
}

type weightedSet struct {
	features [][]float64
	labels   []float64
}

// classBalancedOversample approximates per-sample class weighting by
// duplicating rows of the minority class until both classes contribute
// equally to the fit. The gradient-descent fit below has no native
// sample-weight parameter, so oversampling is the standard workaround
// for a class-imbalanced survivor-pool dataset (home teams win more
// often than they lose across a full season).
func classBalancedOversample(vectors [][]float64, labels []float64) weightedSet {
	var pos, neg []int
	for i, y := range labels {
		if y > 0.5 {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}
	if len(pos) == 0 || len(neg) == 0 {
		return weightedSet{features: vectors, labels: labels}
	}

	majority, minority := pos, neg
	if len(neg) > len(pos) {
		majority, minority = neg, pos
	}

	out := weightedSet{
		features: make([][]float64, 0, 2*len(majority)),
		labels:   make([]float64, 0, 2*len(majority)),
	}
	for _, idx := range majority {
		out.features = append(out.features, vectors[idx])
		out.labels = append(out.labels, labels[idx])
	}
	for i := 0; i < len(majority); i++ {
		idx := minority[i%len(minority)]
		out.features = append(out.features, vectors[idx])
		out.labels = append(out.labels, labels[idx])
	}
	return out
}

// fitPlattCV fits Platt scaling with k-fold cross-validation: the
// sigmoid is refit k times, each time leaving one fold out, and the
// resulting A/B parameters are averaged. This keeps the calibration
// curve from overfitting to quirks of any single fold.
func fitPlattCV(scores, labels []float64, k int) *plattScaler {
	if k < 2 || len(scores) < k {
		return fitPlatt(scores, labels)
	}

	n := len(scores)
	foldSize := n / k
	var sumA, sumB float64
	folds := 0
	for fold := 0; fold < k; fold++ {
		start := fold * foldSize
		end := start + foldSize
		if fold == k-1 {
			end = n
		}
		trainScores := make([]float64, 0, n-(end-start))
		trainLabels := make([]float64, 0, n-(end-start))
		for i := 0; i < n; i++ {
			if i >= start && i < end {
				continue
			}
			trainScores = append(trainScores, scores[i])
			trainLabels = append(trainLabels, labels[i])
		}
		scaler := fitPlatt(trainScores, trainLabels)
		sumA += scaler.A
		sumB += scaler.B
		folds++
	}
	if folds == 0 {
		return fitPlatt(scores, labels)
	}
	return &plattScaler{A: sumA / float64(folds), B: sumB / float64(folds)}
}
