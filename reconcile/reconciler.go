// Package reconcile settles pick outcomes against completed games and
// eliminates entries whose picks lost. It is the post-game counterpart
// to winmodel's pre-game probability updater.
package reconcile

import (
	"context"
	"fmt"

	"nfl-survivor-go/engineerrors"
	"nfl-survivor-go/logging"
	"nfl-survivor-go/models"
	"nfl-survivor-go/store"
)

// Reconciler settles picks for completed games and flips entries dead
// on a loss. It depends only on store.Reader/store.Writer, never on a
// concrete database package.
type Reconciler struct {
	reader store.Reader
	writer store.Writer
}

func NewReconciler(reader store.Reader, writer store.Writer) *Reconciler {
	return &Reconciler{reader: reader, writer: writer}
}

// Result summarizes one reconciliation pass.
type Result struct {
	PicksSettled     int
	EntriesEliminated int
}

// ProcessWeek settles every undecided pick in (season, week) against
// its game's final outcome. A pick whose game is still unplayed is
// left untouched. A loss flips the owning entry to eliminated.
// Returns engineerrors.InsufficientData if no games are scheduled at
// all for (season, week), distinguishing that from "nothing to settle
// yet because every game is still unplayed".
func (r *Reconciler) ProcessWeek(ctx context.Context, entryIDs []string, season, week int) (Result, error) {
	games, err := r.reader.ListGames(ctx, season, week, false, false)
	if err != nil {
		return Result{}, fmt.Errorf("list games for reconcile: %w", err)
	}
	gameByTeam := make(map[string]models.Game, len(games)*2)
	found := false
	for _, g := range games {
		if g.Week != week {
			continue
		}
		found = true
		gameByTeam[g.Home] = g
		gameByTeam[g.Away] = g
	}
	if !found {
		return Result{}, engineerrors.InsufficientData(fmt.Sprintf("no games scheduled for season %d week %d", season, week))
	}

	log := logging.WithFields(map[string]interface{}{"season": season, "week": week})

	var result Result
	for _, entryID := range entryIDs {
		entryLog := log.WithFields(map[string]interface{}{"entry": entryID})

		picks, err := r.reader.ListPicks(ctx, entryID)
		if err != nil {
			entryLog.Warnf("reconcile: list picks failed: %v", err)
			continue
		}
		for _, pick := range picks {
			if pick.Season != season || pick.Week != week || pick.IsDecided() {
				continue
			}
			game, ok := gameByTeam[pick.Team]
			if !ok || !game.IsPlayed() {
				continue
			}

			pickLog := entryLog.WithFields(map[string]interface{}{"pick": pick.ID, "team": pick.Team})

			won := game.Winner() == pick.Team
			if err := r.writer.SetPickOutcome(ctx, pick.ID, won); err != nil {
				pickLog.Warnf("reconcile: set outcome failed: %v", err)
				continue
			}
			result.PicksSettled++
			pickLog.WithFields(map[string]interface{}{"won": won}).Infof("reconcile: pick settled")

			if !won {
				if err := r.writer.MarkEntryEliminated(ctx, entryID, week); err != nil {
					entryLog.Warnf("reconcile: eliminate entry failed: %v", err)
					continue
				}
				result.EntriesEliminated++
			}
		}
	}

	log.WithFields(map[string]interface{}{
		"picks_settled":      result.PicksSettled,
		"entries_eliminated": result.EntriesEliminated,
	}).Infof("reconcile: week processed")

	return result, nil
}
