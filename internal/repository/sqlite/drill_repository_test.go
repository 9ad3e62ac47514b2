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

type DrillRepositorySuite struct {
	suite.Suite
	db         *sql.DB
	attempts   repository.DrillAttemptRepository
	selections repository.SelectionRepository
}

func (s *DrillRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.attempts = sqlite.NewDrillAttemptRepository(s.db)
	s.selections = sqlite.NewSelectionRepository(s.db)

	_, err := s.db.Exec(`INSERT INTO athletes (id, name, sport) VALUES ('ath-1', 'Maya', 'lacrosse')`)
	s.Require().NoError(err)
}

func (s *DrillRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DrillRepositorySuite) TestInsertAndListAttempts() {
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i, drillID := range []string{"beg-reaction-ball", "beg-ladder-basic", "beg-reaction-ball"} {
		id, err := s.attempts.Insert(ctx, models.DrillAttempt{
			AthleteID:   "ath-1",
			Sport:       "lacrosse",
			DrillID:     drillID,
			Accuracy:    70 + float64(i)*5,
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		})
		s.Require().NoError(err)
		s.Greater(id, int64(0))
	}

	got, err := s.attempts.ListByAthlete(ctx, "ath-1", "lacrosse")
	s.Require().NoError(err)
	s.Require().Len(got, 3)

	// Ordered by completion time ascending.
	s.Equal("beg-reaction-ball", got[0].DrillID)
	s.Equal(70.0, got[0].Accuracy)
	s.True(got[2].CompletedAt.After(got[0].CompletedAt))
}

func (s *DrillRepositorySuite) TestListAttemptsFiltersBySport() {
	ctx := context.Background()

	_, err := s.attempts.Insert(ctx, models.DrillAttempt{
		AthleteID: "ath-1", Sport: "lacrosse", DrillID: "beg-reaction-ball",
		Accuracy: 80, CompletedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)

	got, err := s.attempts.ListByAthlete(ctx, "ath-1", "soccer")
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *DrillRepositorySuite) TestSelectionMissingReturnsNil() {
	got, err := s.selections.Get(context.Background(), "ath-1", "lacrosse", "2026-03-10")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *DrillRepositorySuite) TestSelectionRoundTrip() {
	ctx := context.Background()

	sel := models.DailySelection{
		AthleteID: "ath-1",
		Sport:     "lacrosse",
		Date:      "2026-03-10",
		Tier:      models.TierBeginner,
		Drills: []models.ScoredDrill{
			{
				Drill:      models.Drill{ID: "beg-reaction-ball", Name: "Reaction Ball", Tier: models.TierBeginner, Category: models.CategoryReaction},
				Recency:    100,
				TotalScore: 225,
				Reason:     models.ReasonNeverAttempted,
				ReasonText: "first exposure",
			},
		},
		Reasons: map[string]models.SelectionReason{
			"beg-reaction-ball": models.ReasonNeverAttempted,
		},
	}

	_, err := s.selections.Upsert(ctx, sel)
	s.Require().NoError(err)

	got, err := s.selections.Get(ctx, "ath-1", "lacrosse", "2026-03-10")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(models.TierBeginner, got.Tier)
	s.Require().Len(got.Drills, 1)
	s.Equal("beg-reaction-ball", got.Drills[0].ID)
	s.Equal(models.CategoryReaction, got.Drills[0].Category)
	s.Equal(225.0, got.Drills[0].TotalScore)
	s.Equal(models.ReasonNeverAttempted, got.Reasons["beg-reaction-ball"])
}

func (s *DrillRepositorySuite) TestSelectionUpsertOverwrites() {
	ctx := context.Background()

	sel := models.DailySelection{
		AthleteID: "ath-1", Sport: "lacrosse", Date: "2026-03-10", Tier: models.TierBeginner,
		Drills:  []models.ScoredDrill{{Drill: models.Drill{ID: "beg-reaction-ball"}}},
		Reasons: map[string]models.SelectionReason{"beg-reaction-ball": models.ReasonNeverAttempted},
	}
	_, err := s.selections.Upsert(ctx, sel)
	s.Require().NoError(err)

	sel.Tier = models.TierAdvanced
	sel.Drills = []models.ScoredDrill{{Drill: models.Drill{ID: "adv-wall-ball"}}}
	sel.Reasons = map[string]models.SelectionReason{"adv-wall-ball": models.ReasonTierChallenge}
	_, err = s.selections.Upsert(ctx, sel)
	s.Require().NoError(err)

	got, err := s.selections.Get(ctx, "ath-1", "lacrosse", "2026-03-10")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(models.TierAdvanced, got.Tier)
	s.Require().Len(got.Drills, 1)
	s.Equal("adv-wall-ball", got.Drills[0].ID)

	var count int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM daily_selections`).Scan(&count))
	s.Equal(1, count)
}

func (s *DrillRepositorySuite) TestSelectionDelete() {
	ctx := context.Background()

	_, err := s.selections.Upsert(ctx, models.DailySelection{
		AthleteID: "ath-1", Sport: "lacrosse", Date: "2026-03-10", Tier: models.TierBeginner,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.selections.Delete(ctx, "ath-1", "lacrosse", "2026-03-10"))

	got, err := s.selections.Get(ctx, "ath-1", "lacrosse", "2026-03-10")
	s.Require().NoError(err)
	s.Nil(got)
}

func TestDrillRepositorySuite(t *testing.T) {
	suite.Run(t, new(DrillRepositorySuite))
}
