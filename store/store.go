// Package store defines the persistence contract the decision engine
// depends on. The engine packages (features, winmodel, matchup,
// simulate, strategy, portfolio, scarcity) import only this package,
// never database directly, so the core stays testable against an
// in-memory fake and swappable to a non-Mongo backend without touching
// algorithm code.
package store

import (
	"context"

	"nfl-survivor-go/models"
)

// Reader is the read-side contract the core needs.
type Reader interface {
	// ListGames returns games for a season at or after weekMin.
	// unplayedOnly restricts to games with no recorded outcome;
	// requireWinProb restricts to games with both win probabilities
	// set (the Matchup Loader's view).
	ListGames(ctx context.Context, season, weekMin int, unplayedOnly, requireWinProb bool) ([]models.Game, error)

	// ListTeams returns every known team, any order; callers sort as
	// needed.
	ListTeams(ctx context.Context) ([]models.Team, error)

	// LatestStats returns the most recent stat row for team at or
	// before weekUpper in season, or nil if none exists.
	LatestStats(ctx context.Context, team string, season, weekUpper int) (*models.TeamWeekStats, error)

	// ListPicks returns every pick an entry has submitted, any season.
	ListPicks(ctx context.Context, entryID string) ([]models.Pick, error)
}

// Writer is the write-side contract the core needs.
type Writer interface {
	// UpdateGameWinProb sets a game's home/away win probability. game
	// identifies the row by (season, week, home).
	UpdateGameWinProb(ctx context.Context, season, week int, home string, pHome, pAway float64) error

	// InsertSimulationRun persists an audit record of one optimizer
	// invocation.
	InsertSimulationRun(ctx context.Context, run models.SimulationRun) error

	// SetPickOutcome records whether a pick's team won, as part of
	// reconciliation.
	SetPickOutcome(ctx context.Context, pickID string, won bool) error

	// MarkEntryEliminated flips an entry to dead as of the given week.
	MarkEntryEliminated(ctx context.Context, entryID string, week int) error
}

// Store combines Reader and Writer in one interface;
// database.MongoStore satisfies it. Callers that need both sides (the
// reconcile package, main's wiring) take them as separate Reader and
// Writer parameters.
type Store interface {
	Reader
	Writer
}

// AdminStore covers the entry/pick bookkeeping the HTTP surface needs
// that the decision engine itself never touches: creating entries,
// recording a submitted pick, and listing entries for a season. Kept
// separate from Reader/Writer so the engine packages' dependency stays
// exactly the read/write pair they use; only the handlers package and
// database.MongoStore see this interface.
type AdminStore interface {
	ListEntries(ctx context.Context, season int) ([]models.Entry, error)
	GetEntry(ctx context.Context, entryID string) (*models.Entry, error)
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	CreatePick(ctx context.Context, pick models.Pick) (models.Pick, error)
}
