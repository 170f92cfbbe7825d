package features

import (
	"testing"

	"nfl-survivor-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestVector_FixedOrder(t *testing.T) {
	home := &models.TeamWeekStats{
		TotalDVOA: f(10), OffenseDVOA: f(5), DefenseDVOA: f(-3),
		OffEPA: f(0.2), DefEPA: f(-0.1), SRS: f(4), RecentFormAvg: f(1.5), RestDays: i(10),
	}
	away := &models.TeamWeekStats{
		TotalDVOA: f(2), OffenseDVOA: f(1), DefenseDVOA: f(1),
		OffEPA: f(0.05), DefEPA: f(0.02), SRS: f(1), RecentFormAvg: f(0.5), RestDays: i(6),
	}

	v := Vector(home, away, false)
	assert.InDelta(t, 8, v[0], 1e-9)    // total dvoa diff
	assert.InDelta(t, 4, v[1], 1e-9)    // offense dvoa diff
	assert.InDelta(t, 4, v[2], 1e-9)    // defense diff, inverted: away(1) - home(-3)
	assert.InDelta(t, 0.15, v[3], 1e-9) // off epa diff
	assert.InDelta(t, 0.12, v[4], 1e-9, "def epa diff is away - home")
	assert.InDelta(t, 3, v[5], 1e-9)
	assert.InDelta(t, 1, v[6], 1e-9)
	assert.InDelta(t, 4, v[7], 1e-9)
	assert.Equal(t, 1.0, v[8], "is_home")
	assert.Equal(t, 0.0, v[9], "is_neutral")
}

func TestVector_NeutralSite(t *testing.T) {
	v := Vector(nil, nil, true)
	assert.Equal(t, 0.0, v[8])
	assert.Equal(t, 1.0, v[9])
}

func TestVector_MissingStatsSubstituteZero(t *testing.T) {
	v := Vector(nil, nil, false)
	for i := 0; i <= 6; i++ {
		assert.Zero(t, v[i])
	}
	assert.Equal(t, 0.0, v[7], "missing rest days on both sides substitutes 7 - 7 = 0")
}

func TestIsTrainable(t *testing.T) {
	var allZero [VectorSize]float64
	assert.False(t, IsTrainable(allZero))

	withSignal := allZero
	withSignal[5] = 0.1
	assert.True(t, IsTrainable(withSignal))

	onlyTrailingFeatures := allZero
	onlyTrailingFeatures[8] = 1
	assert.False(t, IsTrainable(onlyTrailingFeatures), "home/neutral flags alone don't count as signal")
}

func TestAssemble_MatchesGamesAgainstLookup(t *testing.T) {
	homeWin := true
	games := []models.Game{
		{Season: 2024, Week: 1, Home: "BUF", Away: "NYJ", HomeWin: &homeWin},
		{Season: 2024, Week: 2, Home: "BUF", Away: "NYJ"}, // unplayed, no HomeWin
	}
	stats := map[string]*models.TeamWeekStats{
		"BUF": {Team: "BUF", Season: 2024, Week: 1, SRS: f(6)},
		"NYJ": {Team: "NYJ", Season: 2024, Week: 1, SRS: f(-2)},
	}
	lookup := func(team string, season, weekUpper int) *models.TeamWeekStats {
		return stats[team]
	}

	samples := Assemble(games, lookup)
	require.Len(t, samples, 1)
	assert.Equal(t, 1.0, samples[0].Label)
	assert.Equal(t, "BUF", samples[0].Home)
}

func TestAssemble_SkipsAllZeroFeatureSamples(t *testing.T) {
	homeWin := false
	games := []models.Game{
		{Season: 2024, Week: 1, Home: "BUF", Away: "NYJ", HomeWin: &homeWin},
	}
	lookup := func(team string, season, weekUpper int) *models.TeamWeekStats { return nil }

	samples := Assemble(games, lookup)
	assert.Empty(t, samples)
}

func TestAssemble_SortsBySeasonThenWeek(t *testing.T) {
	homeWin := true
	games := []models.Game{
		{Season: 2024, Week: 3, Home: "KC", Away: "DEN", HomeWin: &homeWin},
		{Season: 2024, Week: 1, Home: "BUF", Away: "NYJ", HomeWin: &homeWin},
	}
	stats := map[string]*models.TeamWeekStats{
		"BUF": {SRS: f(6)}, "NYJ": {SRS: f(-2)},
		"KC": {SRS: f(4)}, "DEN": {SRS: f(1)},
	}
	lookup := func(team string, season, weekUpper int) *models.TeamWeekStats { return stats[team] }

	samples := Assemble(games, lookup)
	require.Len(t, samples, 2)
	assert.Equal(t, 1, samples[0].Week)
	assert.Equal(t, 3, samples[1].Week)
}
