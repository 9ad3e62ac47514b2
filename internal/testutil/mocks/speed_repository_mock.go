package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mviana/trainflow/internal/models"
)

// MockSpeedSessionRepository is a mock implementation of repository.SpeedSessionRepository
type MockSpeedSessionRepository struct {
	mock.Mock
}

func (m *MockSpeedSessionRepository) Insert(ctx context.Context, session models.SpeedSession) (int64, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSpeedSessionRepository) ListRecent(ctx context.Context, athleteID, sport string, limit int) ([]models.SpeedSession, error) {
	args := m.Called(ctx, athleteID, sport, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SpeedSession), args.Error(1)
}

func (m *MockSpeedSessionRepository) Latest(ctx context.Context, athleteID, sport string) (*models.SpeedSession, error) {
	args := m.Called(ctx, athleteID, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpeedSession), args.Error(1)
}

func (m *MockSpeedSessionRepository) LastSessionNumber(ctx context.Context, athleteID, sport string) (int, error) {
	args := m.Called(ctx, athleteID, sport)
	return args.Int(0), args.Error(1)
}

// MockSpeedGoalsRepository is a mock implementation of repository.SpeedGoalsRepository
type MockSpeedGoalsRepository struct {
	mock.Mock
}

func (m *MockSpeedGoalsRepository) Get(ctx context.Context, athleteID, sport string) (*models.SpeedGoals, error) {
	args := m.Called(ctx, athleteID, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpeedGoals), args.Error(1)
}

func (m *MockSpeedGoalsRepository) Upsert(ctx context.Context, goals models.SpeedGoals) error {
	args := m.Called(ctx, goals)
	return args.Error(0)
}
