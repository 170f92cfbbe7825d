// Command backfillwinprobs re-predicts win probabilities for every
// unplayed game in a season and writes them back to the store. It is
// the operational counterpart to the server's own startup training
// pass, for re-running the updater without restarting the service.
package main

import (
	"context"
	"flag"
	"time"

	"nfl-survivor-go/config"
	"nfl-survivor-go/database"
	"nfl-survivor-go/features"
	"nfl-survivor-go/logging"
	"nfl-survivor-go/models"
	"nfl-survivor-go/winmodel"
)

func main() {
	season := flag.Int("season", 0, "season to backfill win probabilities for (required)")
	flag.Parse()

	if *season == 0 {
		logging.Fatalf("usage: backfillwinprobs -season=2026")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("failed to load configuration: %v", err)
	}
	optCfg, err := config.LoadOptimizerConfig()
	if err != nil {
		logging.Fatalf("failed to load optimizer configuration: %v", err)
	}

	db, err := database.NewMongoConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	})
	if err != nil {
		logging.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	store := database.NewMongoStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	games, err := store.ListGames(ctx, *season, 0, false, false)
	if err != nil {
		logging.Fatalf("failed to list games for season %d: %v", *season, err)
	}

	lookup := func(team string, season, weekUpper int) *models.TeamWeekStats {
		row, err := store.LatestStats(ctx, team, season, weekUpper)
		if err != nil {
			logging.Warnf("latest stats for %s week %d: %v", team, weekUpper, err)
			return nil
		}
		return row
	}

	samples := features.Assemble(games, lookup)
	if len(samples) == 0 {
		logging.Warnf("no trainable samples for season %d, using SRS-logistic fallback for the whole backfill", *season)
		runUpdater(ctx, store, nil, *season)
		return
	}

	cutoff := len(samples) * 4 / 5
	model, err := winmodel.Train(samples[:cutoff], samples[cutoff:], optCfg.FallbackLogisticScale)
	if err != nil {
		logging.Warnf("model training failed, using SRS-logistic fallback: %v", err)
		model = nil
	}

	runUpdater(ctx, store, model, *season)
}

func runUpdater(ctx context.Context, store *database.MongoStore, model *winmodel.Classifier, season int) {
	updater := winmodel.NewUpdater(store, store, model)
	updated, err := updater.Run(ctx, season)
	if err != nil {
		logging.Fatalf("win-probability backfill failed: %v", err)
	}
	logging.Infof("backfilled win probabilities for %d games in season %d", updated, season)
}
