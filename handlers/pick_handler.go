package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"nfl-survivor-go/config"
	"nfl-survivor-go/engineerrors"
	"nfl-survivor-go/logging"
	"nfl-survivor-go/matchup"
	"nfl-survivor-go/models"
	"nfl-survivor-go/portfolio"
	"nfl-survivor-go/scarcity"
	"nfl-survivor-go/store"

	"github.com/gorilla/mux"
)

// PickHandler submits picks and serves portfolio recommendations.
type PickHandler struct {
	reader store.Reader
	admin  store.AdminStore
	opt    *config.OptimizerConfig
}

func NewPickHandler(reader store.Reader, admin store.AdminStore, opt *config.OptimizerConfig) *PickHandler {
	return &PickHandler{reader: reader, admin: admin, opt: opt}
}

type submitPickRequest struct {
	Entry  string `json:"entry"`
	Team   string `json:"team"`
	Season int    `json:"season"`
	Week   int    `json:"week"`
}

// SubmitPick handles POST /api/picks/submit. Rejects team reuse,
// double-pick in the same week, and picks on an eliminated entry.
func (h *PickHandler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	var req submitPickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Entry == "" || req.Team == "" || req.Season == 0 || req.Week == 0 {
		http.Error(w, "entry, team, season, and week are required", http.StatusBadRequest)
		return
	}

	entry, err := h.admin.GetEntry(r.Context(), req.Entry)
	if err != nil {
		if appErr, ok := err.(*engineerrors.AppError); ok {
			writeAppError(w, appErr)
			return
		}
		http.Error(w, "unable to validate entry", http.StatusInternalServerError)
		return
	}
	if !entry.IsAlive {
		writeAppError(w, engineerrors.Conflict("entry is eliminated", req.Entry))
		return
	}

	existing, err := h.reader.ListPicks(r.Context(), req.Entry)
	if err != nil {
		logging.Errorf("pick handler: list picks failed for entry %s: %v", req.Entry, err)
		http.Error(w, "unable to validate pick", http.StatusInternalServerError)
		return
	}

	for _, p := range existing {
		if p.Season == req.Season && p.Week == req.Week {
			writeAppError(w, engineerrors.Conflict("entry already has a pick for this week", strconv.Itoa(req.Week)))
			return
		}
		if p.Team == req.Team {
			writeAppError(w, engineerrors.Conflict("team already used by this entry", req.Team))
			return
		}
	}

	pick, err := h.admin.CreatePick(r.Context(), models.Pick{
		Entry:       req.Entry,
		Team:        req.Team,
		Season:      req.Season,
		Week:        req.Week,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		logging.Errorf("pick handler: create pick failed: %v", err)
		http.Error(w, "unable to submit pick", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, pick)
}

// RecommendPicks handles GET /api/picks/recommend/{week}?season=. It
// invokes the portfolio coordinator over every alive entry in the
// season.
func (h *PickHandler) RecommendPicks(w http.ResponseWriter, r *http.Request) {
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

	result, err := matchup.Load(r.Context(), h.reader, season, week)
	if err != nil {
		logging.Errorf("pick handler: matchup load failed: %v", err)
		http.Error(w, "unable to load matchups", http.StatusInternalServerError)
		return
	}
	if len(result.Grid) == 0 {
		writeAppError(w, engineerrors.InsufficientData("no matchups with win probabilities available"))
		return
	}

	entries, err := h.admin.ListEntries(r.Context(), season)
	if err != nil {
		logging.Errorf("pick handler: list entries failed: %v", err)
		http.Error(w, "unable to load entries", http.StatusInternalServerError)
		return
	}

	teamCol := make(map[string]int, len(result.Teams))
	for i, t := range result.Teams {
		teamCol[t] = i
	}

	var inputs []portfolio.EntryInput
	usedAnywhere := make(map[string]bool)
	for _, e := range entries {
		if !e.IsAlive {
			continue
		}
		picks, err := h.reader.ListPicks(r.Context(), e.ID)
		if err != nil {
			logging.Warnf("pick handler: list picks for entry %s failed: %v", e.ID, err)
			continue
		}
		mask := make([]bool, len(result.Teams))
		for _, p := range picks {
			if col, ok := teamCol[p.Team]; ok {
				mask[col] = true
			}
			usedAnywhere[p.Team] = true
		}
		inputs = append(inputs, portfolio.EntryInput{ID: e.ID, UsedMask: mask})
	}

	recs := portfolio.Run(result.Grid, result.Weeks, result.Teams, inputs,
		h.opt.NSimulations, uint64(h.opt.Seed), h.opt.BeamWidth, h.opt.DiversityPenalty)

	writeJSON(w, http.StatusOK, recommendResponse{
		Recommendations: recs,
		ScarcityByWeek:  scarcity.CountByWeek(result.ByWeek, usedAnywhere, h.opt.StrongTeamThreshold),
		SpreadByWeek:    scarcity.WinProbSpreadByWeek(result.ByWeek, usedAnywhere),
	})
}

type recommendResponse struct {
	Recommendations []portfolio.Recommendation `json:"recommendations"`
	ScarcityByWeek  map[int]int                `json:"scarcity_by_week"`
	SpreadByWeek    map[int]scarcity.Spread    `json:"win_prob_spread_by_week"`
}

func writeAppError(w http.ResponseWriter, err *engineerrors.AppError) {
	status := http.StatusInternalServerError
	switch err.Code {
	case engineerrors.CodeNotFound:
		status = http.StatusNotFound
	case engineerrors.CodeConflict:
		status = http.StatusBadRequest
	case engineerrors.CodeInsufficientData:
		status = http.StatusNotFound
	case engineerrors.CodeTransient:
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"code": string(err.Code), "message": err.Message, "details": err.Details})
}
