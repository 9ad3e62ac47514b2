package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mviana/trainflow/internal/errors"
	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
	"github.com/mviana/trainflow/internal/speed"
)

// SessionInput is the client-supplied part of a timed-sprint session.
type SessionInput struct {
	AthleteID       string              `json:"athlete_id"`
	Sport           string              `json:"sport"`
	Times           models.SessionTimes `json:"times"`
	RPE             int                 `json:"rpe"`
	PreFeel         string              `json:"pre_feel"`
	PostFeel        string              `json:"post_feel"`
	SleepRating     int                 `json:"sleep_rating"`
	PainAreas       []string            `json:"pain_areas"`
	DrillsPerformed []string            `json:"drills_performed"`
}

// SessionResult is what a successful session save produced.
type SessionResult struct {
	Session         models.SpeedSession `json:"session"`
	Goals           models.SpeedGoals   `json:"goals"`
	Improved        []string            `json:"improved"`
	Plateaued       bool                `json:"plateaued"`
	IsBreakDay      bool                `json:"is_break_day"`
	BreakDayReasons []string            `json:"break_day_reasons,omitempty"`
}

// SpeedStatus is the program overview returned to clients.
type SpeedStatus struct {
	Goals       models.SpeedGoals    `json:"goals"`
	LastSession *models.SpeedSession `json:"last_session,omitempty"`
	CanTrain    bool                 `json:"can_train"`
	UnlockAt    time.Time            `json:"unlock_at"`
}

// SpeedService handles timed-sprint sessions and the progression record
type SpeedService interface {
	SaveSession(ctx context.Context, input SessionInput) (*SessionResult, error)
	Status(ctx context.Context, athleteID, sport string) (*SpeedStatus, error)
}

type speedService struct {
	athletes     repository.AthleteRepository
	sessions     repository.SpeedSessionRepository
	goals        repository.SpeedGoalsRepository
	plateauAfter int
	cooldown     time.Duration
	now          func() time.Time
}

// NewSpeedService creates a new SpeedService
func NewSpeedService(
	athletes repository.AthleteRepository,
	sessions repository.SpeedSessionRepository,
	goals repository.SpeedGoalsRepository,
	plateauAfter int,
	cooldown time.Duration,
) SpeedService {
	if plateauAfter <= 0 {
		plateauAfter = speed.DefaultPlateauAfter
	}
	if cooldown <= 0 {
		cooldown = speed.DefaultCooldown
	}
	return &speedService{
		athletes:     athletes,
		sessions:     sessions,
		goals:        goals,
		plateauAfter: plateauAfter,
		cooldown:     cooldown,
		now:          time.Now,
	}
}

// SaveSession validates and persists one timed-sprint session, then
// folds it into the progression record. Sessions closer together than
// the cooldown are rejected so back-to-back timing noise never reaches
// the personal-best log.
func (s *speedService) SaveSession(ctx context.Context, input SessionInput) (*SessionResult, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	log.Debug("saving speed session: athlete_id=%s, sport=%s", input.AthleteID, input.Sport)

	athlete, err := s.athletes.Get(ctx, input.AthleteID)
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if athlete == nil {
		return nil, errors.NewNotFoundError("athlete", input.AthleteID)
	}

	if input.Sport == "" {
		return nil, errors.NewValidationError("sport", "is required")
	}
	if input.RPE < 0 || input.RPE > 10 {
		return nil, errors.NewValidationError("rpe", "must be between 0 and 10")
	}
	if input.SleepRating < 0 || input.SleepRating > 5 {
		return nil, errors.NewValidationError("sleep_rating", "must be between 0 and 5")
	}
	for dist, attempts := range input.Times {
		for _, t := range attempts {
			if t <= 0 {
				return nil, errors.NewValidationError("times", fmt.Sprintf("non-positive time for %s", dist))
			}
		}
	}

	latest, err := s.sessions.Latest(ctx, input.AthleteID, input.Sport)
	if err != nil {
		log.Error("failed to get latest session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if ok, unlockAt := speed.NextUnlock(latest, s.cooldown, now); !ok {
		return nil, errors.NewConflictError(fmt.Sprintf("session cooldown active until %s", unlockAt.UTC().Format(time.RFC3339)))
	}

	lastNumber, err := s.sessions.LastSessionNumber(ctx, input.AthleteID, input.Sport)
	if err != nil {
		log.Error("failed to get last session number: %v", err)
		return nil, errors.NewInternalError(err)
	}

	goals, err := s.goals.Get(ctx, input.AthleteID, input.Sport)
	if err != nil {
		log.Error("failed to get speed goals: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if goals == nil {
		goals = &models.SpeedGoals{
			AthleteID:     input.AthleteID,
			Sport:         input.Sport,
			PersonalBests: map[string]float64{},
			Status:        models.ProgramNotStarted,
		}
	}

	session := models.SpeedSession{
		AthleteID:       input.AthleteID,
		Sport:           input.Sport,
		SessionNumber:   lastNumber + 1,
		PerformedAt:     now,
		Times:           input.Times,
		RPE:             input.RPE,
		PreFeel:         input.PreFeel,
		PostFeel:        input.PostFeel,
		SleepRating:     input.SleepRating,
		PainAreas:       input.PainAreas,
		DrillsPerformed: input.DrillsPerformed,
	}

	isBreak, reasons := speed.EvaluateBreakDay(session, latest, goals.PersonalBests)
	session.IsBreakDay = isBreak
	session.ReadinessScore = speed.Readiness(input.SleepRating, len(input.PainAreas))
	if isBreak {
		log.Info("session flagged as break day: athlete_id=%s, reasons=%v", input.AthleteID, reasons)
	}

	updatedGoals, progress := speed.ApplyProgress(*goals, session, s.plateauAfter, now)

	id, err := s.sessions.Insert(ctx, session)
	if err != nil {
		log.Error("failed to insert session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	session.ID = id

	if err := s.goals.Upsert(ctx, updatedGoals); err != nil {
		log.Error("failed to update speed goals: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("speed session saved: athlete_id=%s, number=%d, improved=%v, plateaued=%t",
		input.AthleteID, session.SessionNumber, progress.Improved, progress.Plateaued)

	return &SessionResult{
		Session:         session,
		Goals:           updatedGoals,
		Improved:        progress.Improved,
		Plateaued:       progress.Plateaued,
		IsBreakDay:      isBreak,
		BreakDayReasons: reasons,
	}, nil
}

func (s *speedService) Status(ctx context.Context, athleteID, sport string) (*SpeedStatus, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	log.Debug("getting speed status: athlete_id=%s, sport=%s", athleteID, sport)

	athlete, err := s.athletes.Get(ctx, athleteID)
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if athlete == nil {
		return nil, errors.NewNotFoundError("athlete", athleteID)
	}

	goals, err := s.goals.Get(ctx, athleteID, sport)
	if err != nil {
		log.Error("failed to get speed goals: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if goals == nil {
		goals = &models.SpeedGoals{
			AthleteID:     athleteID,
			Sport:         sport,
			PersonalBests: map[string]float64{},
			Status:        models.ProgramNotStarted,
		}
	}

	latest, err := s.sessions.Latest(ctx, athleteID, sport)
	if err != nil {
		log.Error("failed to get latest session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	canTrain, unlockAt := speed.NextUnlock(latest, s.cooldown, now)
	return &SpeedStatus{
		Goals:       *goals,
		LastSession: latest,
		CanTrain:    canTrain,
		UnlockAt:    unlockAt,
	}, nil
}
