package repository

import (
	"context"

	"github.com/mviana/trainflow/internal/models"
)

// SpeedSessionRepository handles the append-only session log
type SpeedSessionRepository interface {
	Insert(ctx context.Context, session models.SpeedSession) (int64, error)
	ListRecent(ctx context.Context, athleteID, sport string, limit int) ([]models.SpeedSession, error)
	Latest(ctx context.Context, athleteID, sport string) (*models.SpeedSession, error)
	LastSessionNumber(ctx context.Context, athleteID, sport string) (int, error)
}

// SpeedGoalsRepository handles the per-athlete/sport progression record
type SpeedGoalsRepository interface {
	Get(ctx context.Context, athleteID, sport string) (*models.SpeedGoals, error)
	Upsert(ctx context.Context, goals models.SpeedGoals) error
}
