package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mviana/trainflow/internal/models"
)

// MockAthleteRepository is a mock implementation of repository.AthleteRepository
type MockAthleteRepository struct {
	mock.Mock
}

func (m *MockAthleteRepository) Get(ctx context.Context, id string) (*models.Athlete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) List(ctx context.Context) ([]models.Athlete, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) Upsert(ctx context.Context, athlete models.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *MockAthleteRepository) UpdateTier(ctx context.Context, id string, tier models.Tier) error {
	args := m.Called(ctx, id, tier)
	return args.Error(0)
}
