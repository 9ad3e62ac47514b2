package repository

import (
	"context"

	"github.com/mviana/trainflow/internal/models"
)

// DrillAttemptRepository handles the raw drill attempt log
type DrillAttemptRepository interface {
	Insert(ctx context.Context, attempt models.DrillAttempt) (int64, error)
	ListByAthlete(ctx context.Context, athleteID, sport string) ([]models.DrillAttempt, error)
}

// SelectionRepository handles the cached daily drill selections.
// At most one row exists per (athlete, sport, date); Upsert overwrites.
type SelectionRepository interface {
	Get(ctx context.Context, athleteID, sport, date string) (*models.DailySelection, error)
	Upsert(ctx context.Context, selection models.DailySelection) (int64, error)
	Delete(ctx context.Context, athleteID, sport, date string) error
}
