package winmodel

import (
	"context"

	"nfl-survivor-go/logging"
	"nfl-survivor-go/store"
)

// Updater applies a Classifier to every unplayed game in a season and
// persists the resulting win probabilities. It holds no state of its
// own beyond the store and model it was built with.
type Updater struct {
	reader store.Reader
	writer store.Writer
	model  *Classifier
}

// NewUpdater builds an Updater. model may be nil, in which case every
// prediction uses the SRS-logistic fallback.
func NewUpdater(reader store.Reader, writer store.Writer, model *Classifier) *Updater {
	return &Updater{reader: reader, writer: writer, model: model}
}

// Run fetches every unplayed game in season, predicts its win
// probability from each team's latest prior stats, and writes the
// result back. It returns the count of games updated. Played games are
// skipped entirely.
func (u *Updater) Run(ctx context.Context, season int) (int, error) {
	games, err := u.reader.ListGames(ctx, season, 0, true, false)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, g := range games {
		if g.IsPlayed() {
			continue
		}

		home, err := u.reader.LatestStats(ctx, g.Home, g.Season, g.Week-1)
		if err != nil {
			logging.Warnf("win-prob update: latest stats for %s week %d: %v", g.Home, g.Week, err)
			continue
		}
		away, err := u.reader.LatestStats(ctx, g.Away, g.Season, g.Week-1)
		if err != nil {
			logging.Warnf("win-prob update: latest stats for %s week %d: %v", g.Away, g.Week, err)
			continue
		}

		pHome, pAway := u.model.Predict(home, away, g.Neutral)
		if err := u.writer.UpdateGameWinProb(ctx, g.Season, g.Week, g.Home, pHome, pAway); err != nil {
			logging.Warnf("win-prob update: write %s @ %s week %d: %v", g.Away, g.Home, g.Week, err)
			continue
		}
		updated++
	}
	return updated, nil
}
