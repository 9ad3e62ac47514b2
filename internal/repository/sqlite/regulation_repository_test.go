package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
	"github.com/mviana/trainflow/internal/repository/sqlite"
	"github.com/mviana/trainflow/internal/testutil"
)

type RegulationRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.RegulationReportRepository
}

func (s *RegulationRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewRegulationReportRepository(s.db)

	_, err := s.db.Exec(`INSERT INTO athletes (id, name, sport) VALUES ('ath-1', 'Maya', 'lacrosse')`)
	s.Require().NoError(err)
}

func (s *RegulationRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *RegulationRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "ath-1", "2026-03-10")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *RegulationRepositorySuite) TestUpsertAndGet() {
	ctx := context.Background()

	report := models.RegulationReport{
		AthleteID: "ath-1",
		Date:      "2026-03-10",
		Scores: models.ComponentScores{
			Sleep: 80, Stress: 60, PhysicalReadiness: 70, Movement: 100,
			TrainingLoad: 70, Fuel: 90, Calendar: 100,
		},
		Composite:   81,
		Band:        models.BandGreen,
		Headline:    "Ready to go",
		Summary:     "Solid sleep and a clean movement screen.",
		GeneratedAt: time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.Upsert(ctx, report))

	got, err := s.repo.Get(ctx, "ath-1", "2026-03-10")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(report.Scores, got.Scores)
	s.Equal(81, got.Composite)
	s.Equal(models.BandGreen, got.Band)
	s.Equal("Ready to go", got.Headline)
}

func (s *RegulationRepositorySuite) TestUpsertOverwrites() {
	ctx := context.Background()

	report := models.RegulationReport{
		AthleteID: "ath-1", Date: "2026-03-10",
		Scores:    models.ComponentScores{Sleep: 40, Stress: 40, PhysicalReadiness: 40, Movement: 60, TrainingLoad: 50, Fuel: 50, Calendar: 40},
		Composite: 46, Band: models.BandRed,
		GeneratedAt: time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.Upsert(ctx, report))

	report.Composite = 75
	report.Band = models.BandGreen
	report.Scores.Sleep = 90
	s.Require().NoError(s.repo.Upsert(ctx, report))

	got, err := s.repo.Get(ctx, "ath-1", "2026-03-10")
	s.Require().NoError(err)
	s.Equal(75, got.Composite)
	s.Equal(models.BandGreen, got.Band)
	s.Equal(90, got.Scores.Sleep)

	var count int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM regulation_reports`).Scan(&count))
	s.Equal(1, count)
}

func TestRegulationRepositorySuite(t *testing.T) {
	suite.Run(t, new(RegulationRepositorySuite))
}
