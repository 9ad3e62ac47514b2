package services

import (
	"context"
	"time"

	"github.com/mviana/trainflow/internal/catalog"
	"github.com/mviana/trainflow/internal/drills"
	"github.com/mviana/trainflow/internal/errors"
	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
)

// DrillService handles daily drill selection and the attempt log
type DrillService interface {
	TodaysSelection(ctx context.Context, athleteID, sport string) (*models.DailySelection, error)
	RefreshSelection(ctx context.Context, athleteID, sport string) (*models.DailySelection, error)
	LogAttempt(ctx context.Context, attempt models.DrillAttempt) (models.DrillAttempt, error)
}

type drillService struct {
	athletes   repository.AthleteRepository
	attempts   repository.DrillAttemptRepository
	selections repository.SelectionRepository
	drillCount int
	now        func() time.Time
}

// NewDrillService creates a new DrillService. drillCount is the size
// of the daily set.
func NewDrillService(
	athletes repository.AthleteRepository,
	attempts repository.DrillAttemptRepository,
	selections repository.SelectionRepository,
	drillCount int,
) DrillService {
	return &drillService{
		athletes:   athletes,
		attempts:   attempts,
		selections: selections,
		drillCount: drillCount,
		now:        time.Now,
	}
}

// TodaysSelection returns the stored selection for today, computing and
// storing one if none exists. A stored selection computed at a lower
// tier than the athlete's current tier is stale and gets recomputed, so
// a promotion shows up the same day.
func (s *drillService) TodaysSelection(ctx context.Context, athleteID, sport string) (*models.DailySelection, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	date := models.DateOf(now)
	log.Debug("getting daily selection: athlete_id=%s, sport=%s, date=%s", athleteID, sport, date)

	athlete, err := s.athletes.Get(ctx, athleteID)
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if athlete == nil {
		return nil, errors.NewNotFoundError("athlete", athleteID)
	}

	stored, err := s.selections.Get(ctx, athleteID, sport, date)
	if err != nil {
		log.Error("failed to get stored selection: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if stored != nil {
		if athlete.Tier <= stored.Tier || stored.ContainsTier(athlete.Tier) {
			return stored, nil
		}
		log.Info("stored selection tier %s behind athlete tier %s, recomputing", stored.Tier, athlete.Tier)
	}

	return s.compute(ctx, athlete, sport, date, now)
}

// RefreshSelection drops today's stored selection and computes a fresh
// one.
func (s *drillService) RefreshSelection(ctx context.Context, athleteID, sport string) (*models.DailySelection, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	date := models.DateOf(now)
	log.Debug("refreshing daily selection: athlete_id=%s, sport=%s, date=%s", athleteID, sport, date)

	athlete, err := s.athletes.Get(ctx, athleteID)
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if athlete == nil {
		return nil, errors.NewNotFoundError("athlete", athleteID)
	}

	if err := s.selections.Delete(ctx, athleteID, sport, date); err != nil {
		log.Error("failed to delete stored selection: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return s.compute(ctx, athlete, sport, date, now)
}

func (s *drillService) compute(ctx context.Context, athlete *models.Athlete, sport, date string, now time.Time) (*models.DailySelection, error) {
	log := logger.FromContext(ctx)

	attempts, err := s.attempts.ListByAthlete(ctx, athlete.ID, sport)
	if err != nil {
		log.Error("failed to load attempt history: %v", err)
		return nil, errors.NewInternalError(err)
	}

	history := drills.BuildHistory(attempts)
	unlocked := catalog.UnlockedFor(athlete.Tier)
	selected := drills.SelectDaily(unlocked, history, athlete.Tier, s.drillCount, now)

	selection := models.DailySelection{
		AthleteID: athlete.ID,
		Sport:     sport,
		Date:      date,
		Tier:      athlete.Tier,
		Drills:    selected,
		Reasons:   drills.ReasonsByDrill(selected),
		CreatedAt: now,
	}

	if id, err := s.selections.Upsert(ctx, selection); err != nil {
		log.Error("failed to store selection, returning uncached result: %v", err)
	} else {
		selection.ID = id
	}

	log.Info("daily selection computed: athlete_id=%s, drills=%d, tier=%s", athlete.ID, len(selected), athlete.Tier)
	return &selection, nil
}

func (s *drillService) LogAttempt(ctx context.Context, attempt models.DrillAttempt) (models.DrillAttempt, error) {
	log := logger.FromContext(ctx)
	log.Debug("logging drill attempt: athlete_id=%s, drill_id=%s", attempt.AthleteID, attempt.DrillID)

	athlete, err := s.athletes.Get(ctx, attempt.AthleteID)
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return models.DrillAttempt{}, errors.NewInternalError(err)
	}
	if athlete == nil {
		return models.DrillAttempt{}, errors.NewNotFoundError("athlete", attempt.AthleteID)
	}

	if _, ok := catalog.ByID(attempt.DrillID); !ok {
		return models.DrillAttempt{}, errors.NewNotFoundError("drill", attempt.DrillID)
	}
	if attempt.Accuracy < 0 || attempt.Accuracy > 100 {
		return models.DrillAttempt{}, errors.NewValidationError("accuracy", "must be between 0 and 100")
	}
	if attempt.CompletedAt.IsZero() {
		attempt.CompletedAt = s.now()
	}

	id, err := s.attempts.Insert(ctx, attempt)
	if err != nil {
		log.Error("failed to insert attempt: %v", err)
		return models.DrillAttempt{}, errors.NewInternalError(err)
	}
	attempt.ID = id
	return attempt, nil
}
