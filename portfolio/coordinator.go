// Package portfolio assembles diversified per-entry recommendations
// across a set of alive entries, penalizing a team the more times it
// has already been recommended to another entry in the same call.
package portfolio

import (
	"sort"

	"nfl-survivor-go/matchup"
	"nfl-survivor-go/simulate"
	"nfl-survivor-go/strategy"
)

// EntryInput is one alive entry's state going into the coordinator.
type EntryInput struct {
	ID       string
	UsedMask []bool
}

// Recommendation is the coordinator's output for one entry.
type Recommendation struct {
	EntryID           string         `json:"entry_id"`
	Week              int            `json:"week"`
	RecommendedTeam   string         `json:"recommended_team"`
	WinProbThisWeek   float64        `json:"win_prob_this_week"`
	SurvivalProb      float64        `json:"survival_prob"`
	PortfolioCoverage float64        `json:"portfolio_coverage"`
	StrategyPicks     map[int]string `json:"strategy_picks"`
}

// Run computes one recommendation per alive entry, in input order,
// penalizing teams already recommended earlier in this same call by
// diversityPenalty (0.05 in the default config) per prior duplicate.
// Entries for which the single-entry simulator
// has no candidate (every team used or unavailable) are skipped rather
// than erroring.
func Run(grid matchup.Matrix, weeks []int, teams []string, entries []EntryInput, nSims int, seed uint64, beamWidth int, diversityPenalty float64) []Recommendation {
	if len(grid) == 0 || len(teams) == 0 || len(entries) == 0 {
		return nil
	}

	colOf := make(map[string]int, len(teams))
	for i, t := range teams {
		colOf[t] = i
	}

	committed := make(map[string]int)
	var recs []Recommendation

	for _, e := range entries {
		strategyPicks, strategySurvival := strategy.Run(grid, teams, e.UsedMask, beamWidth)
		_ = strategySurvival

		singleProbs := simulate.Run(grid, teams, e.UsedMask, nSims, seed)
		if len(singleProbs) == 0 {
			continue
		}

		candidates := make([]string, 0, len(singleProbs))
		for t := range singleProbs {
			candidates = append(candidates, t)
		}
		sort.Strings(candidates)

		bestTeam := ""
		bestScore := -1.0
		for _, t := range candidates {
			p := singleProbs[t]
			k := committed[t]
			score := p * (1 - diversityPenalty*float64(k))
			if score > bestScore {
				bestScore = score
				bestTeam = t
			}
		}
		committed[bestTeam]++

		rec := Recommendation{
			EntryID:           e.ID,
			RecommendedTeam:   bestTeam,
			WinProbThisWeek:   grid[0][colOf[bestTeam]],
			SurvivalProb:      singleProbs[bestTeam],
			PortfolioCoverage: bestScore,
			StrategyPicks:     zipWeeks(weeks, strategyPicks),
		}
		if len(weeks) > 0 {
			rec.Week = weeks[0]
		}
		recs = append(recs, rec)
	}
	return recs
}

func zipWeeks(weeks []int, picks []string) map[int]string {
	out := make(map[int]string, len(picks))
	for i, pick := range picks {
		if i >= len(weeks) {
			break
		}
		out[weeks[i]] = pick
	}
	return out
}
