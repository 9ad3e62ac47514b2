package repository

import (
	"context"

	"github.com/mviana/trainflow/internal/models"
)

// AthleteRepository handles athlete data access
type AthleteRepository interface {
	Get(ctx context.Context, id string) (*models.Athlete, error)
	List(ctx context.Context) ([]models.Athlete, error)
	Upsert(ctx context.Context, athlete models.Athlete) error
	UpdateTier(ctx context.Context, id string, tier models.Tier) error
}
