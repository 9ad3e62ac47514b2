package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mviana/trainflow/internal/models"
)

// sportFor resolves the sport a request targets: the sport query
// parameter when given, the athlete's own sport otherwise.
func (s *Server) sportFor(r *http.Request, athleteID string) (string, error) {
	if sport := r.URL.Query().Get("sport"); sport != "" {
		return sport, nil
	}
	athlete, err := s.Athletes.Get(r.Context(), athleteID)
	if err != nil {
		return "", err
	}
	return athlete.Sport, nil
}

func (s *Server) handleTodaysDrills(w http.ResponseWriter, r *http.Request) {
	athleteID := chi.URLParam(r, "id")
	sport, err := s.sportFor(r, athleteID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	selection, err := s.Drills.TodaysSelection(r.Context(), athleteID, sport)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, selection)
}

func (s *Server) handleRefreshDrills(w http.ResponseWriter, r *http.Request) {
	athleteID := chi.URLParam(r, "id")
	sport, err := s.sportFor(r, athleteID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	selection, err := s.Drills.RefreshSelection(r.Context(), athleteID, sport)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, selection)
}

func (s *Server) handleLogAttempt(w http.ResponseWriter, r *http.Request) {
	var attempt models.DrillAttempt
	if err := decodeJSON(r, &attempt); err != nil {
		handleError(w, r, err)
		return
	}
	attempt.AthleteID = chi.URLParam(r, "id")

	saved, err := s.Drills.LogAttempt(r.Context(), attempt)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, saved)
}
