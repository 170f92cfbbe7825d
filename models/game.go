package models

import "time"

// Game is one scheduled or completed NFL matchup.
//
// Scores and HomeWin are populated once the game concludes; HomeWin is
// nil iff the game is unplayed. HomeWinProb + AwayWinProb sum to 1
// whenever both are set. (Season, Week, Home) is unique.
type Game struct {
	Season  int        `json:"season" bson:"season"`
	Week    int        `json:"week" bson:"week"`
	Home    string     `json:"home" bson:"home"`
	Away    string     `json:"away" bson:"away"`
	Date    *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Neutral bool       `json:"neutral" bson:"neutral"`

	HomeScore *int  `json:"home_score,omitempty" bson:"home_score,omitempty"`
	AwayScore *int  `json:"away_score,omitempty" bson:"away_score,omitempty"`
	HomeWin   *bool `json:"home_win,omitempty" bson:"home_win,omitempty"`

	HomeWinProb *float64 `json:"home_win_prob,omitempty" bson:"home_win_prob,omitempty"`
	AwayWinProb *float64 `json:"away_win_prob,omitempty" bson:"away_win_prob,omitempty"`
}

// IsPlayed reports whether the game has a recorded outcome.
func (g *Game) IsPlayed() bool {
	return g.HomeWin != nil
}

// HasWinProb reports whether both win probabilities have been populated.
func (g *Game) HasWinProb() bool {
	return g.HomeWinProb != nil && g.AwayWinProb != nil
}

// Winner returns the abbreviation of the winning team, or "" if the
// game is unplayed or tied (equal recorded scores). NFL survivor pools
// treat a tie as a loss for both picks; the reconcile package grades a
// pick as lost whenever Winner does not name its team.
func (g *Game) Winner() string {
	if g.HomeWin == nil {
		return ""
	}
	if g.HomeScore != nil && g.AwayScore != nil && *g.HomeScore == *g.AwayScore {
		return ""
	}
	if *g.HomeWin {
		return g.Home
	}
	return g.Away
}
