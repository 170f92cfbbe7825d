package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nfl-survivor-go/config"
	"nfl-survivor-go/database"
	"nfl-survivor-go/features"
	"nfl-survivor-go/handlers"
	"nfl-survivor-go/logging"
	"nfl-survivor-go/models"
	"nfl-survivor-go/winmodel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.Logging.EnableFile {
		if err := logging.ConfigureFileLogging(logging.Config{
			Level:       cfg.Logging.Level,
			Prefix:      cfg.Logging.Prefix,
			EnableColor: cfg.Logging.EnableColor,
		}, cfg.Logging.LogDir); err != nil {
			logging.Warnf("failed to configure file logging, continuing with stdout only: %v", err)
		}
	} else {
		logging.Configure(logging.Config{
			Level:       cfg.Logging.Level,
			Prefix:      cfg.Logging.Prefix,
			EnableColor: cfg.Logging.EnableColor,
		})
	}
	cfg.LogConfiguration()

	optCfg, err := config.LoadOptimizerConfig()
	if err != nil {
		logging.Fatalf("failed to load optimizer configuration: %v", err)
	}

	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	}

	db, err := database.NewMongoConnection(dbConfig)
	if err != nil {
		// Every route here reads or writes persisted state; there is no
		// meaningful demo mode to degrade to, so a failed connection is
		// fatal.
		logging.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	mongoStore := database.NewMongoStore(db)

	model, err := trainModel(mongoStore, cfg.App.CurrentSeason, optCfg)
	if err != nil {
		logging.Warnf("win-probability model training skipped, falling back to SRS-logistic: %v", err)
		model = nil
	} else {
		logging.Infof("win-probability model trained: brier=%.4f log_loss=%.4f (val)",
			model.ValMetrics.Brier, model.ValMetrics.LogLoss)
	}

	router := handlers.NewRouter(mongoStore, mongoStore, mongoStore, model, optCfg)

	addr := cfg.GetServerAddress()
	logging.Infof("survivor decision engine starting on %s", addr)
	logging.Fatalf("server exited: %v", http.ListenAndServe(addr, router))
}

// trainModel assembles training samples for every completed game in
// season from the store and fits a fresh Classifier, holding the most
// recent fifth of samples out as a validation split.
func trainModel(store *database.MongoStore, season int, optCfg *config.OptimizerConfig) (*winmodel.Classifier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	games, err := store.ListGames(ctx, season, 0, false, false)
	if err != nil {
		return nil, err
	}

	lookup := func(team string, season, weekUpper int) *models.TeamWeekStats {
		row, err := store.LatestStats(ctx, team, season, weekUpper)
		if err != nil {
			logging.Warnf("training: latest stats for %s week %d: %v", team, weekUpper, err)
			return nil
		}
		return row
	}

	samples := features.Assemble(games, lookup)
	if len(samples) == 0 {
		return nil, errNoTrainingSamples
	}

	cutoff := len(samples) * 4 / 5
	train, val := samples[:cutoff], samples[cutoff:]
	return winmodel.Train(train, val, optCfg.FallbackLogisticScale)
}

var errNoTrainingSamples = errors.New("no trainable samples assembled for season")
