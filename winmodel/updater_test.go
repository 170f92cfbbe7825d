package winmodel

import (
	"context"
	"testing"

	"nfl-survivor-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	games []models.Game
	stats map[string]*models.TeamWeekStats
}

func (f *fakeReader) ListGames(ctx context.Context, season, weekMin int, unplayedOnly, requireWinProb bool) ([]models.Game, error) {
	return f.games, nil
}

func (f *fakeReader) ListTeams(ctx context.Context) ([]models.Team, error) { return nil, nil }

func (f *fakeReader) LatestStats(ctx context.Context, team string, season, weekUpper int) (*models.TeamWeekStats, error) {
	return f.stats[team], nil
}

func (f *fakeReader) ListPicks(ctx context.Context, entryID string) ([]models.Pick, error) {
	return nil, nil
}

type fakeWriter struct {
	updates []struct {
		season, week        int
		home                string
		pHome, pAway        float64
	}
}

func (f *fakeWriter) UpdateGameWinProb(ctx context.Context, season, week int, home string, pHome, pAway float64) error {
	f.updates = append(f.updates, struct {
		season, week int
		home         string
		pHome, pAway float64
	}{season, week, home, pHome, pAway})
	return nil
}

func (f *fakeWriter) InsertSimulationRun(ctx context.Context, run models.SimulationRun) error {
	return nil
}

func (f *fakeWriter) SetPickOutcome(ctx context.Context, pickID string, won bool) error { return nil }

func (f *fakeWriter) MarkEntryEliminated(ctx context.Context, entryID string, week int) error {
	return nil
}

func TestUpdater_SkipsPlayedGames(t *testing.T) {
	homeWin := true
	reader := &fakeReader{
		games: []models.Game{
			{Season: 2024, Week: 1, Home: "BUF", Away: "NYJ", HomeWin: &homeWin},
			{Season: 2024, Week: 2, Home: "BUF", Away: "MIA"},
		},
		stats: map[string]*models.TeamWeekStats{
			"BUF": {SRS: srs(5)},
			"MIA": {SRS: srs(-1)},
		},
	}
	writer := &fakeWriter{}
	u := NewUpdater(reader, writer, nil)

	n, err := u.Run(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, writer.updates, 1)
	assert.Equal(t, "BUF", writer.updates[0].home)
	assert.InDelta(t, 1.0, writer.updates[0].pHome+writer.updates[0].pAway, 1e-9)
}

func TestUpdater_EmptyScheduleUpdatesNothing(t *testing.T) {
	u := NewUpdater(&fakeReader{}, &fakeWriter{}, nil)
	n, err := u.Run(context.Background(), 2024)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdater_ProbabilitiesCloseOverEveryUpdatedGame(t *testing.T) {
	reader := &fakeReader{
		games: []models.Game{
			{Season: 2024, Week: 3, Home: "BUF", Away: "MIA"},
			{Season: 2024, Week: 3, Home: "KC", Away: "DEN", Neutral: true},
			{Season: 2024, Week: 3, Home: "SF", Away: "SEA"},
		},
		stats: map[string]*models.TeamWeekStats{
			"BUF": {SRS: srs(7)},
			"MIA": {SRS: srs(-2)},
			"KC":  {SRS: srs(3)},
			"DEN": {SRS: srs(3)},
			"SF":  {SRS: srs(10)},
			"SEA": {SRS: srs(-5)},
		},
	}
	writer := &fakeWriter{}
	u := NewUpdater(reader, writer, nil)

	n, err := u.Run(context.Background(), 2024)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Len(t, writer.updates, 3)
	for _, upd := range writer.updates {
		assert.InDelta(t, 1.0, upd.pHome+upd.pAway, 1e-9, "home=%s", upd.home)
	}
}
