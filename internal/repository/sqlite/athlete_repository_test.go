package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
	"github.com/mviana/trainflow/internal/repository/sqlite"
	"github.com/mviana/trainflow/internal/testutil"
)

type AthleteRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.AthleteRepository
}

func (s *AthleteRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewAthleteRepository(s.db)
}

func (s *AthleteRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *AthleteRepositorySuite) TestUpsertAndGet() {
	ctx := context.Background()

	err := s.repo.Upsert(ctx, models.Athlete{
		ID:        "ath-1",
		Name:      "Maya",
		Sport:     "lacrosse",
		Tier:      models.TierAdvanced,
		WeightLbs: 142,
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, "ath-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Maya", got.Name)
	s.Equal("lacrosse", got.Sport)
	s.Equal(models.TierAdvanced, got.Tier)
	s.Equal(142.0, got.WeightLbs)
	s.False(got.CreatedAt.IsZero())
}

func (s *AthleteRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "nobody")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *AthleteRepositorySuite) TestUpsertOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, models.Athlete{ID: "ath-1", Name: "Maya", Sport: "lacrosse"}))
	s.Require().NoError(s.repo.Upsert(ctx, models.Athlete{ID: "ath-1", Name: "Maya R.", Sport: "lacrosse", Tier: models.TierChaos, WeightLbs: 145}))

	got, err := s.repo.Get(ctx, "ath-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Maya R.", got.Name)
	s.Equal(models.TierChaos, got.Tier)

	athletes, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Len(athletes, 1)
}

func (s *AthleteRepositorySuite) TestUpdateTier() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, models.Athlete{ID: "ath-1", Name: "Maya", Sport: "lacrosse"}))
	s.Require().NoError(s.repo.UpdateTier(ctx, "ath-1", models.TierAdvanced))

	got, err := s.repo.Get(ctx, "ath-1")
	s.Require().NoError(err)
	s.Equal(models.TierAdvanced, got.Tier)
}

func (s *AthleteRepositorySuite) TestList() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, models.Athlete{ID: "ath-1", Name: "Maya", Sport: "lacrosse"}))
	s.Require().NoError(s.repo.Upsert(ctx, models.Athlete{ID: "ath-2", Name: "Jo", Sport: "soccer"}))

	athletes, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Len(athletes, 2)
}

func TestAthleteRepositorySuite(t *testing.T) {
	suite.Run(t, new(AthleteRepositorySuite))
}
