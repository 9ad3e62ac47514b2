package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mviana/trainflow/internal/errors"
	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
)

// AthleteService handles athlete profile business logic
type AthleteService interface {
	Get(ctx context.Context, id string) (*models.Athlete, error)
	List(ctx context.Context) ([]models.Athlete, error)
	Save(ctx context.Context, athlete models.Athlete) (*models.Athlete, error)
	SetTier(ctx context.Context, id string, tier models.Tier) error
}

type athleteService struct {
	athletes repository.AthleteRepository
}

// NewAthleteService creates a new AthleteService
func NewAthleteService(athletes repository.AthleteRepository) AthleteService {
	return &athleteService{athletes: athletes}
}

func (s *athleteService) Get(ctx context.Context, id string) (*models.Athlete, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting athlete: id=%s", id)

	athlete, err := s.athletes.Get(ctx, id)
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if athlete == nil {
		return nil, errors.NewNotFoundError("athlete", id)
	}
	return athlete, nil
}

func (s *athleteService) List(ctx context.Context) ([]models.Athlete, error) {
	athletes, err := s.athletes.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list athletes: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return athletes, nil
}

func (s *athleteService) Save(ctx context.Context, athlete models.Athlete) (*models.Athlete, error) {
	log := logger.FromContext(ctx)
	log.Debug("saving athlete: id=%s, name=%s", athlete.ID, athlete.Name)

	if athlete.Name == "" {
		return nil, errors.NewValidationError("name", "is required")
	}
	if athlete.Sport == "" {
		return nil, errors.NewValidationError("sport", "is required")
	}
	if athlete.WeightLbs < 0 {
		return nil, errors.NewValidationError("weight_lbs", "must not be negative")
	}
	if athlete.ID == "" {
		athlete.ID = uuid.NewString()
	}

	if err := s.athletes.Upsert(ctx, athlete); err != nil {
		log.Error("failed to save athlete: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &athlete, nil
}

// SetTier moves the athlete to a new drill tier. The next daily
// selection recomputes against the new tier's unlocked set.
func (s *athleteService) SetTier(ctx context.Context, id string, tier models.Tier) error {
	log := logger.FromContext(ctx)

	athlete, err := s.athletes.Get(ctx, id)
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return errors.NewInternalError(err)
	}
	if athlete == nil {
		return errors.NewNotFoundError("athlete", id)
	}
	if athlete.Tier == tier {
		return nil
	}

	if err := s.athletes.UpdateTier(ctx, id, tier); err != nil {
		log.Error("failed to update tier: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("athlete tier updated: id=%s, tier=%s", id, tier)
	return nil
}
