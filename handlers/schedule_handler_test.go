package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nfl-survivor-go/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestGetSchedule_ReturnsGames(t *testing.T) {
	reader := &fakeReader{games: []models.Game{
		{Season: 2026, Week: 1, Home: "BUF", Away: "NYJ"},
	}}
	h := NewScheduleHandler(reader)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/2026", nil)
	req = mux.SetURLVars(req, map[string]string{"season": "2026"})
	rec := httptest.NewRecorder()
	h.GetSchedule(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSchedule_EmptyScheduleIsNotFound(t *testing.T) {
	reader := &fakeReader{games: nil}
	h := NewScheduleHandler(reader)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/2026", nil)
	req = mux.SetURLVars(req, map[string]string{"season": "2026"})
	rec := httptest.NewRecorder()
	h.GetSchedule(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTeamSchedule_ReturnsGamesForTeam(t *testing.T) {
	reader := &fakeReader{games: []models.Game{
		{Season: 2026, Week: 1, Home: "BUF", Away: "NYJ"},
		{Season: 2026, Week: 2, Home: "KC", Away: "DEN"},
	}}
	h := NewScheduleHandler(reader)

	req := httptest.NewRequest(http.MethodGet, "/api/teams/BUF/schedule?season=2026", nil)
	req = mux.SetURLVars(req, map[string]string{"abbr": "BUF"})
	rec := httptest.NewRecorder()
	h.GetTeamSchedule(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTeamSchedule_UnknownTeamIsNotFound(t *testing.T) {
	reader := &fakeReader{games: []models.Game{
		{Season: 2026, Week: 1, Home: "BUF", Away: "NYJ"},
	}}
	h := NewScheduleHandler(reader)

	req := httptest.NewRequest(http.MethodGet, "/api/teams/GHOST/schedule?season=2026", nil)
	req = mux.SetURLVars(req, map[string]string{"abbr": "GHOST"})
	rec := httptest.NewRecorder()
	h.GetTeamSchedule(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
