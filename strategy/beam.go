// Package strategy implements the beam-search strategy searcher: a
// best-first search over full remaining-season pick sequences that
// maximizes expected joint survival probability under the independent
// game outcomes assumption.
package strategy

import (
	"math"
	"sort"

	"nfl-survivor-go/matchup"
)

// DefaultBeamWidth is the beam width used when a caller doesn't
// override it.
const DefaultBeamWidth = 5

// SentinelPick marks a week where no legal team remained.
const SentinelPick = -1

// SentinelLabel is how a sentinel pick renders to callers.
const SentinelLabel = "NONE"

// state is one partial pick sequence in the beam.
type state struct {
	used     uint64
	picks    []int // column index per week, SentinelPick for a dead week
	survival float64
}

// Run performs the beam search and returns the highest-survival
// pick sequence (team abbreviations, "NONE" for a dead-end week) and
// its overall joint survival probability.
func Run(grid matchup.Matrix, teams []string, usedMask []bool, beamWidth int) ([]string, float64) {
	if len(grid) == 0 || len(teams) == 0 {
		return nil, 0
	}
	if beamWidth <= 0 {
		beamWidth = DefaultBeamWidth
	}

	var initUsed uint64
	for i, u := range usedMask {
		if u {
			initUsed |= 1 << uint(i)
		}
	}

	frontier := []state{{used: initUsed, survival: 1.0}}

	for w := 0; w < len(grid); w++ {
		frontier = expand(frontier, grid[w], beamWidth)
	}

	if len(frontier) == 0 {
		return nil, 0
	}
	best := frontier[0]
	return renderPicks(best.picks, teams), best.survival
}

// expand produces every successor of every state in frontier for one
// week's row, then truncates to beamWidth by descending survival.
func expand(frontier []state, row []float64, beamWidth int) []state {
	successors := make([]state, 0, len(frontier)*len(row))
	for _, s := range frontier {
		extended := false
		for t, p := range row {
			if s.used&(1<<uint(t)) != 0 || math.IsNaN(p) || p < 0 || p > 1 {
				continue
			}
			picks := append(append([]int(nil), s.picks...), t)
			successors = append(successors, state{
				used:     s.used | (1 << uint(t)),
				picks:    picks,
				survival: s.survival * p,
			})
			extended = true
		}
		if !extended {
			picks := append(append([]int(nil), s.picks...), SentinelPick)
			successors = append(successors, state{used: s.used, picks: picks, survival: 0})
		}
	}

	sort.SliceStable(successors, func(i, j int) bool {
		return successors[i].survival > successors[j].survival
	})
	if len(successors) > beamWidth {
		successors = successors[:beamWidth]
	}
	return successors
}

func renderPicks(picks []int, teams []string) []string {
	out := make([]string, len(picks))
	for i, col := range picks {
		if col == SentinelPick {
			out[i] = SentinelLabel
		} else {
			out[i] = teams[col]
		}
	}
	return out
}
