package reconcile

import (
	"context"
	"testing"
	"time"

	"nfl-survivor-go/engineerrors"
	"nfl-survivor-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	games []models.Game
	picks map[string][]models.Pick
}

func (f *fakeReader) ListGames(ctx context.Context, season, weekMin int, unplayedOnly, requireWinProb bool) ([]models.Game, error) {
	var out []models.Game
	for _, g := range f.games {
		if g.Season == season && g.Week >= weekMin {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeReader) ListTeams(ctx context.Context) ([]models.Team, error) { return nil, nil }

func (f *fakeReader) LatestStats(ctx context.Context, team string, season, weekUpper int) (*models.TeamWeekStats, error) {
	return nil, nil
}

func (f *fakeReader) ListPicks(ctx context.Context, entryID string) ([]models.Pick, error) {
	return f.picks[entryID], nil
}

type fakeWriter struct {
	outcomes   map[string]bool
	eliminated map[string]int
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{outcomes: map[string]bool{}, eliminated: map[string]int{}}
}

func (f *fakeWriter) UpdateGameWinProb(ctx context.Context, season, week int, home string, pHome, pAway float64) error {
	return nil
}
func (f *fakeWriter) InsertSimulationRun(ctx context.Context, run models.SimulationRun) error {
	return nil
}
func (f *fakeWriter) SetPickOutcome(ctx context.Context, pickID string, won bool) error {
	f.outcomes[pickID] = won
	return nil
}
func (f *fakeWriter) MarkEntryEliminated(ctx context.Context, entryID string, week int) error {
	f.eliminated[entryID] = week
	return nil
}

func boolPtr(b bool) *bool { return &b }

func TestProcessWeek_WinningPickStaysAlive(t *testing.T) {
	win := true
	reader := &fakeReader{
		games: []models.Game{
			{Season: 2026, Week: 3, Home: "BUF", Away: "NYJ", HomeWin: &win},
		},
		picks: map[string][]models.Pick{
			"e1": {{ID: "p1", Entry: "e1", Team: "BUF", Season: 2026, Week: 3, SubmittedAt: time.Now()}},
		},
	}
	writer := newFakeWriter()
	r := NewReconciler(reader, writer)

	result, err := r.ProcessWeek(context.Background(), []string{"e1"}, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PicksSettled)
	assert.Equal(t, 0, result.EntriesEliminated)
	assert.True(t, writer.outcomes["p1"])
	assert.Empty(t, writer.eliminated)
}

func TestProcessWeek_LosingPickEliminatesEntry(t *testing.T) {
	win := false
	reader := &fakeReader{
		games: []models.Game{
			{Season: 2026, Week: 3, Home: "BUF", Away: "NYJ", HomeWin: &win},
		},
		picks: map[string][]models.Pick{
			"e1": {{ID: "p1", Entry: "e1", Team: "BUF", Season: 2026, Week: 3, SubmittedAt: time.Now()}},
		},
	}
	writer := newFakeWriter()
	r := NewReconciler(reader, writer)

	result, err := r.ProcessWeek(context.Background(), []string{"e1"}, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PicksSettled)
	assert.Equal(t, 1, result.EntriesEliminated)
	assert.False(t, writer.outcomes["p1"])
	assert.Equal(t, 3, writer.eliminated["e1"])
}

func TestProcessWeek_SkipsUnplayedGames(t *testing.T) {
	reader := &fakeReader{
		games: []models.Game{
			{Season: 2026, Week: 3, Home: "BUF", Away: "NYJ"},
		},
		picks: map[string][]models.Pick{
			"e1": {{ID: "p1", Entry: "e1", Team: "BUF", Season: 2026, Week: 3, SubmittedAt: time.Now()}},
		},
	}
	writer := newFakeWriter()
	r := NewReconciler(reader, writer)

	result, err := r.ProcessWeek(context.Background(), []string{"e1"}, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, result.PicksSettled)
}

func TestProcessWeek_SkipsAlreadyDecidedPicks(t *testing.T) {
	win := true
	reader := &fakeReader{
		games: []models.Game{
			{Season: 2026, Week: 3, Home: "BUF", Away: "NYJ", HomeWin: &win},
		},
		picks: map[string][]models.Pick{
			"e1": {{ID: "p1", Entry: "e1", Team: "BUF", Season: 2026, Week: 3, Outcome: boolPtr(true), SubmittedAt: time.Now()}},
		},
	}
	writer := newFakeWriter()
	r := NewReconciler(reader, writer)

	result, err := r.ProcessWeek(context.Background(), []string{"e1"}, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, result.PicksSettled)
}

func TestProcessWeek_NoGamesScheduledReturnsInsufficientData(t *testing.T) {
	reader := &fakeReader{games: nil, picks: nil}
	writer := newFakeWriter()
	r := NewReconciler(reader, writer)

	_, err := r.ProcessWeek(context.Background(), []string{"e1"}, 2026, 9)
	require.Error(t, err)

	var appErr *engineerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, engineerrors.CodeInsufficientData, appErr.Code)
}
