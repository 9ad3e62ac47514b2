package repository

import (
	"context"

	"github.com/mviana/trainflow/internal/models"
)

// WellnessRepository handles daily wellness-quiz answers
type WellnessRepository interface {
	Upsert(ctx context.Context, athleteID string, answers models.WellnessAnswers) error
	ForDate(ctx context.Context, athleteID, date string) ([]models.WellnessAnswers, error)
}

// TrainingLoadRepository handles per-day training load rows
type TrainingLoadRepository interface {
	Upsert(ctx context.Context, athleteID string, row models.TrainingLoad) error
	Between(ctx context.Context, athleteID, from, to string) ([]models.TrainingLoad, error)
}

// NutritionRepository handles per-day nutrition totals
type NutritionRepository interface {
	Upsert(ctx context.Context, athleteID, date string, totals models.NutritionTotals) error
	ForDate(ctx context.Context, athleteID, date string) (*models.NutritionTotals, error)
}

// CalendarRepository handles upcoming schedule entries
type CalendarRepository interface {
	Insert(ctx context.Context, athleteID string, event models.CalendarEvent) (int64, error)
	Between(ctx context.Context, athleteID, from, to string) ([]models.CalendarEvent, error)
}
