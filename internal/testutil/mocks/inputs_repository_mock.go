package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mviana/trainflow/internal/models"
)

// MockWellnessRepository is a mock implementation of repository.WellnessRepository
type MockWellnessRepository struct {
	mock.Mock
}

func (m *MockWellnessRepository) Upsert(ctx context.Context, athleteID string, answers models.WellnessAnswers) error {
	args := m.Called(ctx, athleteID, answers)
	return args.Error(0)
}

func (m *MockWellnessRepository) ForDate(ctx context.Context, athleteID, date string) ([]models.WellnessAnswers, error) {
	args := m.Called(ctx, athleteID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WellnessAnswers), args.Error(1)
}

// MockTrainingLoadRepository is a mock implementation of repository.TrainingLoadRepository
type MockTrainingLoadRepository struct {
	mock.Mock
}

func (m *MockTrainingLoadRepository) Upsert(ctx context.Context, athleteID string, row models.TrainingLoad) error {
	args := m.Called(ctx, athleteID, row)
	return args.Error(0)
}

func (m *MockTrainingLoadRepository) Between(ctx context.Context, athleteID, from, to string) ([]models.TrainingLoad, error) {
	args := m.Called(ctx, athleteID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrainingLoad), args.Error(1)
}

// MockNutritionRepository is a mock implementation of repository.NutritionRepository
type MockNutritionRepository struct {
	mock.Mock
}

func (m *MockNutritionRepository) Upsert(ctx context.Context, athleteID, date string, totals models.NutritionTotals) error {
	args := m.Called(ctx, athleteID, date, totals)
	return args.Error(0)
}

func (m *MockNutritionRepository) ForDate(ctx context.Context, athleteID, date string) (*models.NutritionTotals, error) {
	args := m.Called(ctx, athleteID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionTotals), args.Error(1)
}

// MockCalendarRepository is a mock implementation of repository.CalendarRepository
type MockCalendarRepository struct {
	mock.Mock
}

func (m *MockCalendarRepository) Insert(ctx context.Context, athleteID string, event models.CalendarEvent) (int64, error) {
	args := m.Called(ctx, athleteID, event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCalendarRepository) Between(ctx context.Context, athleteID, from, to string) ([]models.CalendarEvent, error) {
	args := m.Called(ctx, athleteID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CalendarEvent), args.Error(1)
}
