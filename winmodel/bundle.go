package winmodel

import "nfl-survivor-go/models"

// StatBundle is the immutable value a caller hands to Predict: the two
// teams' latest stat rows plus whether the game is at a neutral site.
// It replaces passing around bare *models.TeamWeekStats pointers so the
// zero/substitution rule lives in one place (features.Vector).
type StatBundle struct {
	Home    *models.TeamWeekStats
	Away    *models.TeamWeekStats
	Neutral bool
}

// Matchup pairs a StatBundle with the team abbreviations it concerns,
// so Batch can return results the caller can join back to games.
type Matchup struct {
	Home string
	Away string
	StatBundle
}
