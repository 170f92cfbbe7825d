package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"nfl-survivor-go/logging"
	"nfl-survivor-go/models"
	"nfl-survivor-go/store"
)

// EntryHandler manages survivor-pool entries.
type EntryHandler struct {
	admin store.AdminStore
}

func NewEntryHandler(admin store.AdminStore) *EntryHandler {
	return &EntryHandler{admin: admin}
}

type createEntryRequest struct {
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Season int    `json:"season"`
}

// ListEntries handles GET /api/entries?season=.
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(r.URL.Query().Get("season"))
	if err != nil {
		http.Error(w, "invalid season", http.StatusBadRequest)
		return
	}

	entries, err := h.admin.ListEntries(r.Context(), season)
	if err != nil {
		logging.Errorf("entry handler: list entries failed for season %d: %v", season, err)
		http.Error(w, "unable to fetch entries", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// CreateEntry handles POST /api/entries.
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Season == 0 {
		http.Error(w, "name and season are required", http.StatusBadRequest)
		return
	}

	entry, err := h.admin.CreateEntry(r.Context(), models.Entry{
		Name:   req.Name,
		Owner:  req.Owner,
		Season: req.Season,
	})
	if err != nil {
		logging.Errorf("entry handler: create entry failed: %v", err)
		http.Error(w, "unable to create entry", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
