package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mviana/trainflow/internal/models"
)

// MockDrillAttemptRepository is a mock implementation of repository.DrillAttemptRepository
type MockDrillAttemptRepository struct {
	mock.Mock
}

func (m *MockDrillAttemptRepository) Insert(ctx context.Context, attempt models.DrillAttempt) (int64, error) {
	args := m.Called(ctx, attempt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDrillAttemptRepository) ListByAthlete(ctx context.Context, athleteID, sport string) ([]models.DrillAttempt, error) {
	args := m.Called(ctx, athleteID, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DrillAttempt), args.Error(1)
}

// MockSelectionRepository is a mock implementation of repository.SelectionRepository
type MockSelectionRepository struct {
	mock.Mock
}

func (m *MockSelectionRepository) Get(ctx context.Context, athleteID, sport, date string) (*models.DailySelection, error) {
	args := m.Called(ctx, athleteID, sport, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailySelection), args.Error(1)
}

func (m *MockSelectionRepository) Upsert(ctx context.Context, selection models.DailySelection) (int64, error) {
	args := m.Called(ctx, selection)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSelectionRepository) Delete(ctx context.Context, athleteID, sport, date string) error {
	args := m.Called(ctx, athleteID, sport, date)
	return args.Error(0)
}
