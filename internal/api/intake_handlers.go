package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mviana/trainflow/internal/models"
)

func (s *Server) handleLogWellness(w http.ResponseWriter, r *http.Request) {
	var answers models.WellnessAnswers
	if err := decodeJSON(r, &answers); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Intake.LogWellness(r.Context(), chi.URLParam(r, "id"), answers); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLogTrainingLoad(w http.ResponseWriter, r *http.Request) {
	var row models.TrainingLoad
	if err := decodeJSON(r, &row); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Intake.LogTrainingLoad(r.Context(), chi.URLParam(r, "id"), row); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLogNutrition(w http.ResponseWriter, r *http.Request) {
	var totals models.NutritionTotals
	if err := decodeJSON(r, &totals); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Intake.LogNutrition(r.Context(), chi.URLParam(r, "id"), totals.Date, totals); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	var event models.CalendarEvent
	if err := decodeJSON(r, &event); err != nil {
		handleError(w, r, err)
		return
	}

	id, err := s.Intake.AddEvent(r.Context(), chi.URLParam(r, "id"), event)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]int64{"id": id})
}
