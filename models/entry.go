package models

import "time"

// Entry is one survivor-pool account. It becomes terminal once IsAlive
// is false.
type Entry struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	Name           string     `json:"name" bson:"name"`
	Owner          string     `json:"owner,omitempty" bson:"owner,omitempty"`
	Season         int        `json:"season" bson:"season"`
	IsAlive        bool       `json:"is_alive" bson:"is_alive"`
	EliminatedWeek *int       `json:"eliminated_week,omitempty" bson:"eliminated_week,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
}

// Eliminate marks the entry dead as of the given week.
func (e *Entry) Eliminate(week int) {
	e.IsAlive = false
	w := week
	e.EliminatedWeek = &w
}

// UsedTeams returns the set of team abbreviations already consumed by
// this entry's picks, keyed for O(1) membership checks.
func UsedTeams(picks []Pick) map[string]bool {
	used := make(map[string]bool, len(picks))
	for _, p := range picks {
		used[p.Team] = true
	}
	return used
}
