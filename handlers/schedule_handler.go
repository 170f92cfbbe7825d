package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"nfl-survivor-go/engineerrors"
	"nfl-survivor-go/logging"
	"nfl-survivor-go/store"

	"github.com/gorilla/mux"
)

// ScheduleHandler serves the raw schedule for a season.
type ScheduleHandler struct {
	reader store.Reader
}

func NewScheduleHandler(reader store.Reader) *ScheduleHandler {
	return &ScheduleHandler{reader: reader}
}

// GetSchedule handles GET /api/schedule/{season}.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(mux.Vars(r)["season"])
	if err != nil {
		http.Error(w, "invalid season", http.StatusBadRequest)
		return
	}

	games, err := h.reader.ListGames(r.Context(), season, 0, false, false)
	if err != nil {
		logging.Errorf("schedule handler: list games failed for season %d: %v", season, err)
		http.Error(w, "unable to fetch schedule", http.StatusInternalServerError)
		return
	}
	if len(games) == 0 {
		writeAppError(w, engineerrors.NotFound(fmt.Sprintf("no schedule found for season %d", season)))
		return
	}

	writeJSON(w, http.StatusOK, games)
}

// GetTeamSchedule handles GET /api/teams/{abbr}/schedule?season=.
func (h *ScheduleHandler) GetTeamSchedule(w http.ResponseWriter, r *http.Request) {
	abbr := mux.Vars(r)["abbr"]
	season, err := strconv.Atoi(r.URL.Query().Get("season"))
	if err != nil {
		http.Error(w, "invalid season", http.StatusBadRequest)
		return
	}

	games, err := h.reader.ListGames(r.Context(), season, 0, false, false)
	if err != nil {
		logging.Errorf("schedule handler: list games failed for season %d: %v", season, err)
		http.Error(w, "unable to fetch schedule", http.StatusInternalServerError)
		return
	}

	var teamGames []interface{}
	for _, g := range games {
		if g.Home == abbr || g.Away == abbr {
			teamGames = append(teamGames, g)
		}
	}
	if len(teamGames) == 0 {
		writeAppError(w, engineerrors.NotFound(fmt.Sprintf("no schedule found for team %s in season %d", abbr, season)))
		return
	}
	writeJSON(w, http.StatusOK, teamGames)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Errorf("failed to encode response body: %v", err)
	}
}
