package services

import (
	"context"
	"time"

	"github.com/mviana/trainflow/internal/errors"
	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/narrative"
	"github.com/mviana/trainflow/internal/regulation"
	"github.com/mviana/trainflow/internal/repository"
)

// RegulationService handles the daily readiness report
type RegulationService interface {
	TodaysReport(ctx context.Context, athleteID string) (*models.RegulationReport, error)
	Refresh(ctx context.Context, athleteID string) (*models.RegulationReport, error)
}

type regulationService struct {
	athletes  repository.AthleteRepository
	wellness  repository.WellnessRepository
	loads     repository.TrainingLoadRepository
	nutrition repository.NutritionRepository
	calendar  repository.CalendarRepository
	reports   repository.RegulationReportRepository
	generator *narrative.Generator
	now       func() time.Time
}

// NewRegulationService creates a new RegulationService. generator may
// be nil, in which case reports carry the fixed per-band text.
func NewRegulationService(
	athletes repository.AthleteRepository,
	wellness repository.WellnessRepository,
	loads repository.TrainingLoadRepository,
	nutrition repository.NutritionRepository,
	calendar repository.CalendarRepository,
	reports repository.RegulationReportRepository,
	generator *narrative.Generator,
) RegulationService {
	return &regulationService{
		athletes:  athletes,
		wellness:  wellness,
		loads:     loads,
		nutrition: nutrition,
		calendar:  calendar,
		reports:   reports,
		generator: generator,
		now:       time.Now,
	}
}

// TodaysReport returns the stored report for today, computing one if
// none exists yet.
func (s *regulationService) TodaysReport(ctx context.Context, athleteID string) (*models.RegulationReport, error) {
	log := logger.FromContext(ctx)
	date := models.DateOf(s.now())
	log.Debug("getting regulation report: athlete_id=%s, date=%s", athleteID, date)

	stored, err := s.reports.Get(ctx, athleteID, date)
	if err != nil {
		log.Error("failed to get stored report: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if stored != nil {
		return stored, nil
	}
	return s.Refresh(ctx, athleteID)
}

// Refresh recomputes today's report from the current inputs and
// overwrites the stored row. Missing inputs score at their neutral
// defaults, never as an error. A failed write is logged and the
// computed report still returned; the next read recomputes.
func (s *regulationService) Refresh(ctx context.Context, athleteID string) (*models.RegulationReport, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	date := models.DateOf(now)
	log.Debug("refreshing regulation report: athlete_id=%s, date=%s", athleteID, date)

	athlete, err := s.athletes.Get(ctx, athleteID)
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if athlete == nil {
		return nil, errors.NewNotFoundError("athlete", athleteID)
	}

	inputs, err := s.gatherInputs(ctx, athlete, now)
	if err != nil {
		return nil, err
	}

	scores, composite, band := regulation.Compute(inputs)
	report := models.RegulationReport{
		AthleteID:   athleteID,
		Date:        date,
		Scores:      scores,
		Composite:   composite,
		Band:        band,
		GeneratedAt: now,
	}

	text := narrative.FallbackFor(band)
	if s.generator != nil {
		if generated, err := s.generator.Generate(ctx, report); err == nil {
			text = generated
		} else {
			log.Warn("narrative generation failed, using fallback: %v", err)
		}
	}
	report.Headline = text.Headline
	report.Summary = text.Summary

	if err := s.reports.Upsert(ctx, report); err != nil {
		log.Error("failed to store regulation report: %v", err)
	}

	log.Info("regulation report computed: athlete_id=%s, composite=%d, band=%s", athleteID, composite, band)
	return &report, nil
}

func (s *regulationService) gatherInputs(ctx context.Context, athlete *models.Athlete, now time.Time) (models.RegulationInputs, error) {
	log := logger.FromContext(ctx)
	date := models.DateOf(now)

	wellness, err := s.wellness.ForDate(ctx, athlete.ID, date)
	if err != nil {
		log.Error("failed to load wellness answers: %v", err)
		return models.RegulationInputs{}, errors.NewInternalError(err)
	}

	load3, err := s.loads.Between(ctx, athlete.ID, models.DateOf(now.AddDate(0, 0, -2)), date)
	if err != nil {
		log.Error("failed to load 3-day training load: %v", err)
		return models.RegulationInputs{}, errors.NewInternalError(err)
	}
	load7, err := s.loads.Between(ctx, athlete.ID, models.DateOf(now.AddDate(0, 0, -6)), date)
	if err != nil {
		log.Error("failed to load 7-day training load: %v", err)
		return models.RegulationInputs{}, errors.NewInternalError(err)
	}

	nutrition, err := s.nutrition.ForDate(ctx, athlete.ID, date)
	if err != nil {
		log.Error("failed to load nutrition totals: %v", err)
		return models.RegulationInputs{}, errors.NewInternalError(err)
	}

	events, err := s.calendar.Between(ctx, athlete.ID, date, models.DateOf(now.AddDate(0, 0, 3)))
	if err != nil {
		log.Error("failed to load calendar events: %v", err)
		return models.RegulationInputs{}, errors.NewInternalError(err)
	}

	return models.RegulationInputs{
		Date:         date,
		Wellness:     wellness,
		Load3Day:     load3,
		Load7Day:     load7,
		Nutrition:    nutrition,
		EnergyTarget: regulation.EstimateEnergyTarget(athlete.WeightLbs),
		Events:       events,
	}, nil
}
