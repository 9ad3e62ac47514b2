package services

import (
	"context"
	"time"

	"github.com/mviana/trainflow/internal/errors"
	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
)

// IntakeService handles the daily input logging that feeds regulation
// scoring: wellness quizzes, training load, nutrition and calendar
// entries.
type IntakeService interface {
	LogWellness(ctx context.Context, athleteID string, answers models.WellnessAnswers) error
	LogTrainingLoad(ctx context.Context, athleteID string, row models.TrainingLoad) error
	LogNutrition(ctx context.Context, athleteID, date string, totals models.NutritionTotals) error
	AddEvent(ctx context.Context, athleteID string, event models.CalendarEvent) (int64, error)
}

type intakeService struct {
	athletes  repository.AthleteRepository
	wellness  repository.WellnessRepository
	loads     repository.TrainingLoadRepository
	nutrition repository.NutritionRepository
	calendar  repository.CalendarRepository
	now       func() time.Time
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(
	athletes repository.AthleteRepository,
	wellness repository.WellnessRepository,
	loads repository.TrainingLoadRepository,
	nutrition repository.NutritionRepository,
	calendar repository.CalendarRepository,
) IntakeService {
	return &intakeService{
		athletes:  athletes,
		wellness:  wellness,
		loads:     loads,
		nutrition: nutrition,
		calendar:  calendar,
		now:       time.Now,
	}
}

func (s *intakeService) requireAthlete(ctx context.Context, id string) error {
	athlete, err := s.athletes.Get(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if athlete == nil {
		return errors.NewNotFoundError("athlete", id)
	}
	return nil
}

func validDate(date string) bool {
	_, err := time.Parse(models.DateLayout, date)
	return err == nil
}

func validRating(r *int) bool {
	return r == nil || (*r >= 1 && *r <= 5)
}

func (s *intakeService) LogWellness(ctx context.Context, athleteID string, answers models.WellnessAnswers) error {
	log := logger.FromContext(ctx)
	log.Debug("logging wellness: athlete_id=%s, checkpoint=%s", athleteID, answers.Checkpoint)

	if err := s.requireAthlete(ctx, athleteID); err != nil {
		return err
	}

	switch answers.Checkpoint {
	case models.CheckpointMorning, models.CheckpointPreSession, models.CheckpointPostSession:
	default:
		return errors.NewValidationError("checkpoint", "must be morning, pre_session or post_session")
	}
	if answers.Date == "" {
		answers.Date = models.DateOf(s.now())
	}
	if !validDate(answers.Date) {
		return errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if !validRating(answers.SleepRating) || !validRating(answers.StressRating) || !validRating(answers.PhysicalReadiness) {
		return errors.NewValidationError("ratings", "must be between 1 and 5")
	}
	for area, status := range answers.Movement {
		switch status {
		case models.MovementFull, models.MovementLimited, models.MovementPain:
		default:
			return errors.NewValidationError("movement", "unknown status for area "+area)
		}
	}

	if err := s.wellness.Upsert(ctx, athleteID, answers); err != nil {
		log.Error("failed to save wellness answers: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *intakeService) LogTrainingLoad(ctx context.Context, athleteID string, row models.TrainingLoad) error {
	log := logger.FromContext(ctx)
	log.Debug("logging training load: athlete_id=%s, date=%s", athleteID, row.Date)

	if err := s.requireAthlete(ctx, athleteID); err != nil {
		return err
	}
	if row.Date == "" {
		row.Date = models.DateOf(s.now())
	}
	if !validDate(row.Date) {
		return errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if row.Load < 0 {
		return errors.NewValidationError("load", "must not be negative")
	}

	if err := s.loads.Upsert(ctx, athleteID, row); err != nil {
		log.Error("failed to save training load: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *intakeService) LogNutrition(ctx context.Context, athleteID, date string, totals models.NutritionTotals) error {
	log := logger.FromContext(ctx)
	log.Debug("logging nutrition: athlete_id=%s, date=%s", athleteID, date)

	if err := s.requireAthlete(ctx, athleteID); err != nil {
		return err
	}
	if date == "" {
		date = models.DateOf(s.now())
	}
	if !validDate(date) {
		return errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if totals.Calories < 0 || totals.ProteinG < 0 {
		return errors.NewValidationError("totals", "must not be negative")
	}

	if err := s.nutrition.Upsert(ctx, athleteID, date, totals); err != nil {
		log.Error("failed to save nutrition totals: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *intakeService) AddEvent(ctx context.Context, athleteID string, event models.CalendarEvent) (int64, error) {
	log := logger.FromContext(ctx)
	log.Debug("adding calendar event: athlete_id=%s, date=%s", athleteID, event.Date)

	if err := s.requireAthlete(ctx, athleteID); err != nil {
		return 0, err
	}
	if !validDate(event.Date) {
		return 0, errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if event.Title == "" {
		return 0, errors.NewValidationError("title", "is required")
	}

	id, err := s.calendar.Insert(ctx, athleteID, event)
	if err != nil {
		log.Error("failed to save calendar event: %v", err)
		return 0, errors.NewInternalError(err)
	}
	return id, nil
}
