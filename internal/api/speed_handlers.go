package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mviana/trainflow/internal/services"
)

func (s *Server) handleSpeedStatus(w http.ResponseWriter, r *http.Request) {
	athleteID := chi.URLParam(r, "id")
	sport, err := s.sportFor(r, athleteID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	status, err := s.Speed.Status(r.Context(), athleteID, sport)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, status)
}

func (s *Server) handleSaveSession(w http.ResponseWriter, r *http.Request) {
	var input services.SessionInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	input.AthleteID = chi.URLParam(r, "id")
	if input.Sport == "" {
		sport, err := s.sportFor(r, input.AthleteID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		input.Sport = sport
	}

	result, err := s.Speed.SaveSession(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, result)
}
