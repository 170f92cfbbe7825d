package portfolio

import (
	"testing"

	"nfl-survivor-go/matchup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DiversityPenaltyShiftsSecondEntry(t *testing.T) {
	grid := matchup.Matrix{{0.95, 0.91}}
	teams := []string{"A", "B"}
	weeks := []int{1}
	entries := []EntryInput{
		{ID: "e1", UsedMask: []bool{false, false}},
		{ID: "e2", UsedMask: []bool{false, false}},
	}

	recs := Run(grid, weeks, teams, entries, 20000, 42, 5, 0.05)
	require.Len(t, recs, 2)

	assert.Equal(t, "A", recs[0].RecommendedTeam, "entry 1 should take the strictly dominant team")
	assert.Equal(t, "B", recs[1].RecommendedTeam, "entry 2 should shift to the near-tied alternative once A is penalized")
}

func TestRun_NoAlternativeKeepsSameTeamWithPenalty(t *testing.T) {
	grid := matchup.Matrix{{0.95, 0.2}}
	teams := []string{"A", "B"}
	weeks := []int{1}
	entries := []EntryInput{
		{ID: "e1", UsedMask: []bool{false, false}},
		{ID: "e2", UsedMask: []bool{false, false}},
	}

	recs := Run(grid, weeks, teams, entries, 20000, 42, 5, 0.05)
	require.Len(t, recs, 2)
	assert.Equal(t, "A", recs[0].RecommendedTeam)
	assert.Equal(t, "A", recs[1].RecommendedTeam, "B is far worse even after the penalty on A")
}

func TestRun_EmptyEntriesReturnsNil(t *testing.T) {
	recs := Run(matchup.Matrix{{0.9}}, []int{1}, []string{"A"}, nil, 1000, 42, 5, 0.05)
	assert.Nil(t, recs)
}
