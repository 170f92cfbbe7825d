package models

import "time"

// Pick is one entry's team selection for a single week. At most one
// Pick exists per (Entry, Season, Week); at most one Pick exists per
// (Entry, Team) across a season — survivor pools forbid team reuse.
type Pick struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	Entry           string     `json:"entry" bson:"entry"`
	Team            string     `json:"team" bson:"team"`
	Season          int        `json:"season" bson:"season"`
	Week            int        `json:"week" bson:"week"`
	WinProbAtSubmit *float64   `json:"win_prob_at_submit,omitempty" bson:"win_prob_at_submit,omitempty"`
	IsRecommended   bool       `json:"is_recommended" bson:"is_recommended"`
	Outcome         *bool      `json:"outcome,omitempty" bson:"outcome,omitempty"`
	SubmittedAt     time.Time  `json:"submitted_at" bson:"submitted_at"`
}

// IsDecided reports whether this pick's outcome has been reconciled
// against a completed game.
func (p *Pick) IsDecided() bool {
	return p.Outcome != nil
}
