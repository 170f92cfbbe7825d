package winmodel

// Snapshot is the persisted form of a trained Classifier: enough to
// reconstruct standardization and calibration without re-running the
// gradient descent fit. It carries JSON tags so a caller can marshal
// it; no store method in this repository persists it, and the core
// never imports an encoding package for it.
type Snapshot struct {
	StandardizerMean []float64 `json:"standardizer_mean"`
	StandardizerStd  []float64 `json:"standardizer_std"`
	PlattA           float64   `json:"platt_a"`
	PlattB           float64   `json:"platt_b"`
	TrainBrier       float64   `json:"train_brier"`
	TrainLogLoss     float64   `json:"train_log_loss"`
	ValBrier         float64   `json:"val_brier"`
	ValLogLoss       float64   `json:"val_log_loss"`
}

// ToSnapshot captures the calibration parameters needed to reload this
// classifier elsewhere. It does not capture the fitted logistic
// regression weights themselves: a reload re-trains from the
// persisted training set rather than deserializing coefficients
// directly.
func (c *Classifier) ToSnapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	s := Snapshot{
		TrainBrier:   c.TrainMetrics.Brier,
		TrainLogLoss: c.TrainMetrics.LogLoss,
		ValBrier:     c.ValMetrics.Brier,
		ValLogLoss:   c.ValMetrics.LogLoss,
	}
	if c.standardizer != nil {
		s.StandardizerMean = append([]float64(nil), c.standardizer.Mean...)
		s.StandardizerStd = append([]float64(nil), c.standardizer.Std...)
	}
	if c.platt != nil {
		s.PlattA = c.platt.A
		s.PlattB = c.platt.B
	}
	return s
}
