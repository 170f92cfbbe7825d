// Package matchup materializes the remaining schedule as the dense
// win-probability matrix the simulator and beam searcher operate on.
package matchup

import (
	"context"
	"math"
	"sort"

	"nfl-survivor-go/models"
	"nfl-survivor-go/store"
)

// Matrix is the dense (n_weeks x n_teams) win-probability grid. Rows
// are sorted distinct weeks, columns are sorted team abbreviations.
// Entry [w][t] is NaN if that team is unavailable (bye, or no
// remaining matchup) in week w.
type Matrix [][]float64

// Result bundles the matrix with the row/column labels needed to map
// back to team abbreviations and week numbers.
type Result struct {
	Grid    Matrix
	Weeks   []int
	Teams   []string
	ByWeek  map[int][]models.WeekMatchup
}

// Load queries the store for every remaining matchup at or after week
// in season with a win probability set, and builds the dense matrix.
// Missing inputs produce an empty Result, never an error.
func Load(ctx context.Context, reader store.Reader, season, week int) (Result, error) {
	games, err := reader.ListGames(ctx, season, week, true, true)
	if err != nil {
		return Result{}, err
	}
	if len(games) == 0 {
		return Result{}, nil
	}

	byWeek := make(map[int][]models.WeekMatchup)
	weekSet := make(map[int]bool)
	teamSet := make(map[string]bool)

	for _, g := range games {
		if !g.HasWinProb() {
			continue
		}
		weekSet[g.Week] = true
		teamSet[g.Home] = true
		teamSet[g.Away] = true

		byWeek[g.Week] = append(byWeek[g.Week],
			models.WeekMatchup{Week: g.Week, Team: g.Home, Opponent: g.Away, IsHome: true, WinProb: *g.HomeWinProb},
			models.WeekMatchup{Week: g.Week, Team: g.Away, Opponent: g.Home, IsHome: false, WinProb: *g.AwayWinProb},
		)
	}

	if len(weekSet) == 0 {
		return Result{}, nil
	}

	weeks := make([]int, 0, len(weekSet))
	for w := range weekSet {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	teams := make([]string, 0, len(teamSet))
	for t := range teamSet {
		teams = append(teams, t)
	}
	sort.Strings(teams)

	teamCol := make(map[string]int, len(teams))
	for i, t := range teams {
		teamCol[t] = i
	}
	weekRow := make(map[int]int, len(weeks))
	for i, w := range weeks {
		weekRow[w] = i
	}

	grid := make(Matrix, len(weeks))
	for i := range grid {
		row := make([]float64, len(teams))
		for j := range row {
			row[j] = math.NaN()
		}
		grid[i] = row
	}

	for _, matchups := range byWeek {
		for _, m := range matchups {
			p := m.WinProb
			if p < 0 || p > 1 {
				p = math.NaN()
			}
			grid[weekRow[m.Week]][teamCol[m.Team]] = p
		}
	}

	return Result{Grid: grid, Weeks: weeks, Teams: teams, ByWeek: byWeek}, nil
}
