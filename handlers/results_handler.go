package handlers

import (
	"net/http"
	"strconv"

	"nfl-survivor-go/logging"
	"nfl-survivor-go/reconcile"
	"nfl-survivor-go/store"
	"nfl-survivor-go/winmodel"

	"github.com/gorilla/mux"
)

// ResultsHandler re-predicts upcoming win probabilities and settles
// picks for a just-completed week.
type ResultsHandler struct {
	reader  store.Reader
	writer  store.Writer
	admin   store.AdminStore
	updater *winmodel.Updater
}

func NewResultsHandler(reader store.Reader, writer store.Writer, admin store.AdminStore, updater *winmodel.Updater) *ResultsHandler {
	return &ResultsHandler{reader: reader, writer: writer, admin: admin, updater: updater}
}

type resultsUpdateResponse struct {
	ProbabilitiesUpdated int `json:"probabilities_updated"`
	PicksSettled         int `json:"picks_settled"`
	EntriesEliminated    int `json:"entries_eliminated"`
}

// UpdateResults handles POST /api/results/update/{week}?season=. It
// re-runs the win-probability updater for the season, then reconciles
// every alive entry's picks for the given week.
func (h *ResultsHandler) UpdateResults(w http.ResponseWriter, r *http.Request) {
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

	updated, err := h.updater.Run(r.Context(), season)
	if err != nil {
		logging.Errorf("results handler: win-prob update failed: %v", err)
		http.Error(w, "unable to update win probabilities", http.StatusInternalServerError)
		return
	}

	entries, err := h.admin.ListEntries(r.Context(), season)
	if err != nil {
		logging.Errorf("results handler: list entries failed: %v", err)
		http.Error(w, "unable to load entries", http.StatusInternalServerError)
		return
	}
	entryIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsAlive {
			entryIDs = append(entryIDs, e.ID)
		}
	}

	r2 := reconcile.NewReconciler(h.reader, h.writer)
	result, err := r2.ProcessWeek(r.Context(), entryIDs, season, week)
	if err != nil {
		writeAppError(w, mustAppError(err))
		return
	}

	writeJSON(w, http.StatusOK, resultsUpdateResponse{
		ProbabilitiesUpdated: updated,
		PicksSettled:         result.PicksSettled,
		EntriesEliminated:    result.EntriesEliminated,
	})
}
