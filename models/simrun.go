package models

import "time"

// SimulationRun is an audit record of one optimizer invocation, frozen
// at write time so a past recommendation can be reconstructed.
type SimulationRun struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Season       int       `json:"season" bson:"season"`
	Week         int       `json:"week" bson:"week"`
	NSimulations int       `json:"n_simulations" bson:"n_simulations"`
	RunAt        time.Time `json:"run_at" bson:"run_at"`
	ResultsJSON  string    `json:"results_json" bson:"results_json"`
}
