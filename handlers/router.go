// Package handlers implements the JSON HTTP surface over the decision
// engine: schedule browsing, entry/pick management, on-demand
// simulation, portfolio recommendations, and result reconciliation.
// Handlers depend on store interfaces and engine packages, never on a
// concrete database type, in a handler-struct-over-interface style.
package handlers

import (
	"net/http"

	"nfl-survivor-go/config"
	"nfl-survivor-go/store"
	"nfl-survivor-go/winmodel"

	"github.com/gorilla/mux"
)

// NewRouter wires every route in the external HTTP surface onto a
// fresh gorilla/mux router.
func NewRouter(reader store.Reader, writer store.Writer, admin store.AdminStore, model *winmodel.Classifier, opt *config.OptimizerConfig) *mux.Router {
	schedule := NewScheduleHandler(reader)
	entry := NewEntryHandler(admin)
	pick := NewPickHandler(reader, admin, opt)
	sim := NewSimulateHandler(reader, writer, opt)
	results := NewResultsHandler(reader, writer, admin, winmodel.NewUpdater(reader, writer, model))

	r := mux.NewRouter()
	r.HandleFunc("/api/schedule/{season}", schedule.GetSchedule).Methods(http.MethodGet)
	r.HandleFunc("/api/entries", entry.ListEntries).Methods(http.MethodGet)
	r.HandleFunc("/api/entries", entry.CreateEntry).Methods(http.MethodPost)
	r.HandleFunc("/api/picks/submit", pick.SubmitPick).Methods(http.MethodPost)
	r.HandleFunc("/api/picks/recommend/{week}", pick.RecommendPicks).Methods(http.MethodGet)
	r.HandleFunc("/api/simulate/{week}", sim.RunSimulation).Methods(http.MethodGet)
	r.HandleFunc("/api/results/update/{week}", results.UpdateResults).Methods(http.MethodPost)
	r.HandleFunc("/api/teams/{abbr}/schedule", schedule.GetTeamSchedule).Methods(http.MethodGet)
	return r
}
