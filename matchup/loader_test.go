package matchup

import (
	"context"
	"math"
	"testing"

	"nfl-survivor-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	games []models.Game
}

func (f *fakeReader) ListGames(ctx context.Context, season, weekMin int, unplayedOnly, requireWinProb bool) ([]models.Game, error) {
	return f.games, nil
}
func (f *fakeReader) ListTeams(ctx context.Context) ([]models.Team, error) { return nil, nil }
func (f *fakeReader) LatestStats(ctx context.Context, team string, season, weekUpper int) (*models.TeamWeekStats, error) {
	return nil, nil
}
func (f *fakeReader) ListPicks(ctx context.Context, entryID string) ([]models.Pick, error) {
	return nil, nil
}

func p(v float64) *float64 { return &v }

func TestLoad_BuildsDenseMatrixWithByeAsNaN(t *testing.T) {
	reader := &fakeReader{games: []models.Game{
		{Season: 2024, Week: 1, Home: "BUF", Away: "NYJ", HomeWinProb: p(0.7), AwayWinProb: p(0.3)},
		{Season: 2024, Week: 2, Home: "BUF", Away: "MIA", HomeWinProb: p(0.6), AwayWinProb: p(0.4)},
	}}

	res, err := Load(context.Background(), reader, 2024, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Weeks)
	require.Equal(t, []string{"BUF", "MIA", "NYJ"}, res.Teams)

	// NYJ has no week-2 matchup: bye, should be NaN.
	nyjCol := 2
	assert.True(t, math.IsNaN(res.Grid[1][nyjCol]))

	bufCol := 0
	assert.InDelta(t, 0.7, res.Grid[0][bufCol], 1e-9)
	assert.InDelta(t, 0.6, res.Grid[1][bufCol], 1e-9)
}

func TestLoad_EmptyScheduleReturnsEmptyResult(t *testing.T) {
	res, err := Load(context.Background(), &fakeReader{}, 2024, 1)
	require.NoError(t, err)
	assert.Nil(t, res.Grid)
	assert.Nil(t, res.Weeks)
}

func TestLoad_OutOfRangeProbBecomesNaN(t *testing.T) {
	reader := &fakeReader{games: []models.Game{
		{Season: 2024, Week: 1, Home: "BUF", Away: "NYJ", HomeWinProb: p(1.4), AwayWinProb: p(-0.4)},
	}}
	res, err := Load(context.Background(), reader, 2024, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res.Grid[0][0]))
	assert.True(t, math.IsNaN(res.Grid[0][1]))
}
