package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mviana/trainflow/internal/services"
)

type Server struct {
	Athletes   services.AthleteService
	Drills     services.DrillService
	Speed      services.SpeedService
	Regulation services.RegulationService
	Intake     services.IntakeService
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/athletes", s.handleListAthletes)
	r.Post("/athletes", s.handleSaveAthlete)

	r.Route("/athletes/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetAthlete)
		r.Put("/tier", s.handleSetTier)

		r.Get("/drills/today", s.handleTodaysDrills)
		r.Post("/drills/refresh", s.handleRefreshDrills)
		r.Post("/drills/attempts", s.handleLogAttempt)

		r.Get("/speed/status", s.handleSpeedStatus)
		r.Post("/speed/sessions", s.handleSaveSession)

		r.Get("/regulation/today", s.handleTodaysRegulation)
		r.Post("/regulation/refresh", s.handleRefreshRegulation)

		r.Post("/wellness", s.handleLogWellness)
		r.Post("/training-load", s.handleLogTrainingLoad)
		r.Post("/nutrition", s.handleLogNutrition)
		r.Post("/events", s.handleAddEvent)
	})

	return r
}
