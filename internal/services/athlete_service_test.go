package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mviana/trainflow/internal/errors"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/testutil/mocks"
)

func TestAthleteGet(t *testing.T) {
	athletes := new(mocks.MockAthleteRepository)
	svc := NewAthleteService(athletes)

	athletes.On("Get", mock.Anything, "ath-1").Return(beginnerAthlete(), nil)

	got, err := svc.Get(context.Background(), "ath-1")
	require.NoError(t, err)
	assert.Equal(t, "Maya", got.Name)
}

func TestAthleteGetNotFound(t *testing.T) {
	athletes := new(mocks.MockAthleteRepository)
	svc := NewAthleteService(athletes)

	athletes.On("Get", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.Get(context.Background(), "ghost")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestAthleteSaveValidation(t *testing.T) {
	svc := NewAthleteService(new(mocks.MockAthleteRepository))

	tests := []struct {
		name    string
		athlete models.Athlete
	}{
		{"missing name", models.Athlete{ID: "ath-1", Sport: "lacrosse"}},
		{"missing sport", models.Athlete{ID: "ath-1", Name: "Maya"}},
		{"negative weight", models.Athlete{ID: "ath-1", Name: "Maya", Sport: "lacrosse", WeightLbs: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), tt.athlete)
			assertAppErrorCode(t, err, apperrors.ErrCodeValidation)
		})
	}
}

func TestAthleteSaveValid(t *testing.T) {
	athletes := new(mocks.MockAthleteRepository)
	svc := NewAthleteService(athletes)

	athletes.On("Upsert", mock.Anything, mock.AnythingOfType("models.Athlete")).Return(nil)

	saved, err := svc.Save(context.Background(), models.Athlete{ID: "ath-1", Name: "Maya", Sport: "lacrosse", WeightLbs: 130})
	require.NoError(t, err)
	assert.Equal(t, "ath-1", saved.ID)
	athletes.AssertExpectations(t)
}

func TestAthleteSaveGeneratesID(t *testing.T) {
	athletes := new(mocks.MockAthleteRepository)
	svc := NewAthleteService(athletes)

	athletes.On("Upsert", mock.Anything, mock.AnythingOfType("models.Athlete")).Return(nil)

	saved, err := svc.Save(context.Background(), models.Athlete{Name: "Maya", Sport: "lacrosse"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestAthleteSetTier(t *testing.T) {
	athletes := new(mocks.MockAthleteRepository)
	svc := NewAthleteService(athletes)

	athletes.On("Get", mock.Anything, "ath-1").Return(beginnerAthlete(), nil)
	athletes.On("UpdateTier", mock.Anything, "ath-1", models.TierAdvanced).Return(nil)

	require.NoError(t, svc.SetTier(context.Background(), "ath-1", models.TierAdvanced))
	athletes.AssertExpectations(t)
}

func TestAthleteSetTierUnchanged(t *testing.T) {
	athletes := new(mocks.MockAthleteRepository)
	svc := NewAthleteService(athletes)

	athletes.On("Get", mock.Anything, "ath-1").Return(beginnerAthlete(), nil)

	require.NoError(t, svc.SetTier(context.Background(), "ath-1", models.TierBeginner))
	athletes.AssertNotCalled(t, "UpdateTier", mock.Anything, mock.Anything, mock.Anything)
}
