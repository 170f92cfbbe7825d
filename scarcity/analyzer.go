// Package scarcity counts how many strong teams remain available per
// future week, used to warn a participant when a week is thin on safe
// picks before they burn a strong team early.
package scarcity

import (
	"nfl-survivor-go/models"

	"github.com/montanaflynn/stats"
)

// DefaultThreshold is the win-probability cutoff a team must clear to
// count as "strong" for scarcity purposes.
const DefaultThreshold = 0.65

// CountByWeek returns, for each week present in matchupsByWeek, the
// number of teams with win probability >= threshold that are not in
// usedTeams. A week with no matchups at all is simply absent from the
// result, never a zero entry — the caller can distinguish "no data"
// from "zero strong teams".
func CountByWeek(matchupsByWeek map[int][]models.WeekMatchup, usedTeams map[string]bool, threshold float64) map[int]int {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	out := make(map[int]int, len(matchupsByWeek))
	for week, matchups := range matchupsByWeek {
		count := 0
		for _, m := range matchups {
			if usedTeams[m.Team] {
				continue
			}
			if m.WinProb >= threshold {
				count++
			}
		}
		out[week] = count
	}
	return out
}

// Spread summarizes how tightly bunched win probabilities are for a
// week's available matchups, so a thin week (every team close to a
// coin flip) can be distinguished from one with a few standout
// favorites even when both have the same strong-team count.
type Spread struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// WinProbSpreadByWeek computes the mean and population standard
// deviation of win probability across the not-yet-used teams in each
// week of matchupsByWeek. A week with every candidate team already
// used is omitted, matching CountByWeek's "absent means no data"
// convention.
func WinProbSpreadByWeek(matchupsByWeek map[int][]models.WeekMatchup, usedTeams map[string]bool) map[int]Spread {
	out := make(map[int]Spread, len(matchupsByWeek))
	for week, matchups := range matchupsByWeek {
		probs := make([]float64, 0, len(matchups))
		for _, m := range matchups {
			if usedTeams[m.Team] {
				continue
			}
			probs = append(probs, m.WinProb)
		}
		if len(probs) == 0 {
			continue
		}
		mean, err := stats.Mean(probs)
		if err != nil {
			continue
		}
		stdDev, err := stats.StandardDeviationPopulation(probs)
		if err != nil {
			continue
		}
		out[week] = Spread{Mean: mean, StdDev: stdDev}
	}
	return out
}
