package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mviana/trainflow/internal/errors"
	"github.com/mviana/trainflow/internal/models"
)

func (s *Server) handleListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := s.Athletes.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if athletes == nil {
		athletes = []models.Athlete{}
	}
	respondJSON(w, r, http.StatusOK, athletes)
}

func (s *Server) handleGetAthlete(w http.ResponseWriter, r *http.Request) {
	athlete, err := s.Athletes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, athlete)
}

func (s *Server) handleSaveAthlete(w http.ResponseWriter, r *http.Request) {
	var athlete models.Athlete
	if err := decodeJSON(r, &athlete); err != nil {
		handleError(w, r, err)
		return
	}
	saved, err := s.Athletes.Save(r.Context(), athlete)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, saved)
}

func (s *Server) handleSetTier(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tier string `json:"tier"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}
	tier, err := models.ParseTier(body.Tier)
	if err != nil {
		handleError(w, r, errors.NewValidationError("tier", err.Error()))
		return
	}
	if err := s.Athletes.SetTier(r.Context(), chi.URLParam(r, "id"), tier); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
