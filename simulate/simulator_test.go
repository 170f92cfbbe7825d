package simulate

import (
	"testing"

	"nfl-survivor-go/matchup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SinglePickOneWeek(t *testing.T) {
	grid := matchup.Matrix{{0.9, 0.6}}
	teams := []string{"A", "B"}
	used := []bool{false, false}

	result := Run(grid, teams, used, 10000, 42)

	require.Len(t, result, 2)
	assert.InDelta(t, 0.9, result["A"], 0.02)
	assert.InDelta(t, 0.6, result["B"], 0.02)
}

func TestRun_ForcedGreedyContinuation(t *testing.T) {
	grid := matchup.Matrix{
		{0.9, 0.8, 0.5},
		{0.1, 0.85, 0.6},
		{0.1, 0.1, 0.9},
	}
	teams := []string{"A", "B", "C"}
	used := []bool{false, false, false}

	result := Run(grid, teams, used, 20000, 42)

	require.Contains(t, result, "A")
	assert.InDelta(t, 0.6885, result["A"], 0.03)
}

func TestRun_NoAvailableTeamReturnsEmpty(t *testing.T) {
	grid := matchup.Matrix{{0.9, 0.6}}
	teams := []string{"A", "B"}
	used := []bool{true, true}

	result := Run(grid, teams, used, 1000, 42)
	assert.Empty(t, result)
}

func TestGreedySequence_DeadEndForcesZeroProbability(t *testing.T) {
	grid := matchup.Matrix{
		{0.9, 0.8},
		{0.5, 0.5},
	}
	// column 1 is already used and column 0 is picked in week 0, so
	// week 1 has no candidate left.
	used := []bool{false, true}
	seq := greedySequence(grid, used, 0)
	require.Len(t, seq, 1)
	assert.Equal(t, 0.0, seq[0])
}

func TestRun_EmptyGridReturnsEmpty(t *testing.T) {
	result := Run(nil, nil, nil, 1000, 42)
	assert.Empty(t, result)
}

func TestRun_DeterministicAcrossCalls(t *testing.T) {
	grid := matchup.Matrix{{0.9, 0.6}, {0.5, 0.5}}
	teams := []string{"A", "B"}
	used := []bool{false, false}

	r1 := Run(grid, teams, used, 5000, 42)
	r2 := Run(grid, teams, used, 5000, 42)
	assert.Equal(t, r1, r2)
}
