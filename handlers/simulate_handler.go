package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"nfl-survivor-go/config"
	"nfl-survivor-go/engineerrors"
	"nfl-survivor-go/logging"
	"nfl-survivor-go/matchup"
	"nfl-survivor-go/models"
	"nfl-survivor-go/simulate"
	"nfl-survivor-go/store"

	"github.com/gorilla/mux"
)

// SimulateHandler runs the single-entry Monte Carlo simulator on
// demand and persists an audit record of the run.
type SimulateHandler struct {
	reader store.Reader
	writer store.Writer
	opt    *config.OptimizerConfig
}

func NewSimulateHandler(reader store.Reader, writer store.Writer, opt *config.OptimizerConfig) *SimulateHandler {
	return &SimulateHandler{reader: reader, writer: writer, opt: opt}
}

// RunSimulation handles GET /api/simulate/{week}?season=&n_simulations=&entry_id=.
func (h *SimulateHandler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(mux.Vars(r)["week"])
	if err != nil {
		http.Error(w, "invalid week", http.StatusBadRequest)
		return
	}
	season, err := strconv.Atoi(r.URL.Query().Get("season"))
	if err != nil {
		http.Error(w, "invalid season", http.StatusBadRequest)
		return
	}
	entryID := r.URL.Query().Get("entry_id")
	if entryID == "" {
		http.Error(w, "entry_id is required", http.StatusBadRequest)
		return
	}

	nSims := h.opt.NSimulations
	if raw := r.URL.Query().Get("n_simulations"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			nSims = n
		}
	}

	result, err := matchup.Load(r.Context(), h.reader, season, week)
	if err != nil {
		logging.Errorf("simulate handler: matchup load failed: %v", err)
		http.Error(w, "unable to load matchups", http.StatusInternalServerError)
		return
	}
	if len(result.Grid) == 0 {
		writeAppError(w, engineerrors.InsufficientData("no matchups with win probabilities available"))
		return
	}

	picks, err := h.reader.ListPicks(r.Context(), entryID)
	if err != nil {
		logging.Errorf("simulate handler: list picks failed for entry %s: %v", entryID, err)
		http.Error(w, "unable to load entry picks", http.StatusInternalServerError)
		return
	}
	teamCol := make(map[string]int, len(result.Teams))
	for i, t := range result.Teams {
		teamCol[t] = i
	}
	mask := make([]bool, len(result.Teams))
	for _, p := range picks {
		if col, ok := teamCol[p.Team]; ok {
			mask[col] = true
		}
	}

	survival := simulate.Run(result.Grid, result.Teams, mask, nSims, uint64(h.opt.Seed))

	resultsJSON, err := json.Marshal(survival)
	if err != nil {
		logging.Errorf("simulate handler: marshal results failed: %v", err)
		http.Error(w, "unable to encode results", http.StatusInternalServerError)
		return
	}
	run := models.SimulationRun{
		Season:       season,
		Week:         week,
		NSimulations: nSims,
		ResultsJSON:  string(resultsJSON),
	}
	if err := h.writer.InsertSimulationRun(r.Context(), run); err != nil {
		logging.Warnf("simulate handler: persisting simulation run failed: %v", err)
	}

	writeJSON(w, http.StatusOK, survival)
}
