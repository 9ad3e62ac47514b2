package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mviana/trainflow/internal/models"
)

// MockRegulationReportRepository is a mock implementation of repository.RegulationReportRepository
type MockRegulationReportRepository struct {
	mock.Mock
}

func (m *MockRegulationReportRepository) Get(ctx context.Context, athleteID, date string) (*models.RegulationReport, error) {
	args := m.Called(ctx, athleteID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegulationReport), args.Error(1)
}

func (m *MockRegulationReportRepository) Upsert(ctx context.Context, report models.RegulationReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
