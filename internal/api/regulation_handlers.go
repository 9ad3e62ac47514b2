package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleTodaysRegulation(w http.ResponseWriter, r *http.Request) {
	report, err := s.Regulation.TodaysReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, report)
}

func (s *Server) handleRefreshRegulation(w http.ResponseWriter, r *http.Request) {
	report, err := s.Regulation.Refresh(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, report)
}
