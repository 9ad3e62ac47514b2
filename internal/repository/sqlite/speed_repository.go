package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
)

type speedSessionRepository struct {
	db *sql.DB
}

// NewSpeedSessionRepository creates a new SpeedSessionRepository implementation
func NewSpeedSessionRepository(db *sql.DB) repository.SpeedSessionRepository {
	return &speedSessionRepository{db: db}
}

func (r *speedSessionRepository) Insert(ctx context.Context, s models.SpeedSession) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting speed session: athlete_id=%s, sport=%s, number=%d", s.AthleteID, s.Sport, s.SessionNumber)

	timesJSON, err := toJSON(s.Times)
	if err != nil {
		return 0, err
	}
	painJSON, err := toJSON(s.PainAreas)
	if err != nil {
		return 0, err
	}
	drillsJSON, err := toJSON(s.DrillsPerformed)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO speed_sessions (athlete_id, sport, session_number, performed_at, times, rpe,
    pre_feel, post_feel, sleep_rating, pain_areas, drills_performed, is_break_day, readiness_score)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, s.AthleteID, s.Sport, s.SessionNumber, s.PerformedAt, timesJSON, s.RPE,
		s.PreFeel, s.PostFeel, s.SleepRating, painJSON, drillsJSON, s.IsBreakDay, s.ReadinessScore)
	if err != nil {
		log.Error("failed to insert speed session: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get session id: %v", err)
		return 0, err
	}
	log.Debug("speed session inserted: id=%d", id)
	return id, nil
}

func (r *speedSessionRepository) ListRecent(ctx context.Context, athleteID, sport string, limit int) ([]models.SpeedSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing recent sessions: athlete_id=%s, sport=%s, limit=%d", athleteID, sport, limit)

	query := sqlBuilder.Select(
		"id", "athlete_id", "sport", "session_number", "performed_at", "times", "rpe",
		"pre_feel", "post_feel", "sleep_rating", "pain_areas", "drills_performed",
		"is_break_day", "readiness_score",
	).From("speed_sessions").
		Where(squirrel.Eq{"athlete_id": athleteID, "sport": sport}).
		OrderBy("session_number DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build session query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.SpeedSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	log.Debug("found %d sessions", len(sessions))
	return sessions, rows.Err()
}

func (r *speedSessionRepository) Latest(ctx context.Context, athleteID, sport string) (*models.SpeedSession, error) {
	sessions, err := r.ListRecent(ctx, athleteID, sport, 1)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

func (r *speedSessionRepository) LastSessionNumber(ctx context.Context, athleteID, sport string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")

	var n sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
SELECT MAX(session_number) FROM speed_sessions WHERE athlete_id = ? AND sport = ?
`, athleteID, sport).Scan(&n)
	if err != nil {
		log.Error("failed to get last session number: %v", err)
		return 0, err
	}
	if !n.Valid {
		return 0, nil
	}
	return int(n.Int64), nil
}

type sessionScanner interface {
	Scan(dest ...any) error
}

func scanSession(row sessionScanner) (models.SpeedSession, error) {
	var s models.SpeedSession
	var timesJSON, painJSON, drillsJSON string
	err := row.Scan(&s.ID, &s.AthleteID, &s.Sport, &s.SessionNumber, &s.PerformedAt, &timesJSON, &s.RPE,
		&s.PreFeel, &s.PostFeel, &s.SleepRating, &painJSON, &drillsJSON, &s.IsBreakDay, &s.ReadinessScore)
	if err != nil {
		return s, err
	}
	if err := fromJSON(timesJSON, &s.Times); err != nil {
		return s, err
	}
	if err := fromJSON(painJSON, &s.PainAreas); err != nil {
		return s, err
	}
	if err := fromJSON(drillsJSON, &s.DrillsPerformed); err != nil {
		return s, err
	}
	return s, nil
}

type speedGoalsRepository struct {
	db *sql.DB
}

// NewSpeedGoalsRepository creates a new SpeedGoalsRepository implementation
func NewSpeedGoalsRepository(db *sql.DB) repository.SpeedGoalsRepository {
	return &speedGoalsRepository{db: db}
}

func (r *speedGoalsRepository) Get(ctx context.Context, athleteID, sport string) (*models.SpeedGoals, error) {
	log := logger.FromContext(ctx).WithPrefix("goals_repo")
	log.Debug("getting speed goals: athlete_id=%s, sport=%s", athleteID, sport)

	var g models.SpeedGoals
	var tier, bestsJSON, adjustmentsJSON, status string
	err := r.db.QueryRowContext(ctx, `
SELECT athlete_id, sport, tier, personal_bests, weeks_without_improvement, adjustments, status, updated_at
FROM speed_goals
WHERE athlete_id = ? AND sport = ?
`, athleteID, sport).Scan(&g.AthleteID, &g.Sport, &tier, &bestsJSON, &g.WeeksWithoutImprovement, &adjustmentsJSON, &status, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no goals record")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get speed goals: %v", err)
		return nil, err
	}
	if g.Tier, err = models.ParseSpeedTier(tier); err != nil {
		return nil, err
	}
	if err := fromJSON(bestsJSON, &g.PersonalBests); err != nil {
		return nil, err
	}
	if err := fromJSON(adjustmentsJSON, &g.Adjustments); err != nil {
		return nil, err
	}
	g.Status = models.ProgramStatus(status)
	return &g, nil
}

func (r *speedGoalsRepository) Upsert(ctx context.Context, g models.SpeedGoals) error {
	log := logger.FromContext(ctx).WithPrefix("goals_repo")
	log.Debug("upserting speed goals: athlete_id=%s, sport=%s, tier=%s", g.AthleteID, g.Sport, g.Tier)

	bestsJSON, err := toJSON(g.PersonalBests)
	if err != nil {
		return err
	}
	adjustmentsJSON, err := toJSON(g.Adjustments)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO speed_goals (athlete_id, sport, tier, personal_bests, weeks_without_improvement, adjustments, status, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(athlete_id, sport) DO UPDATE SET
    tier = excluded.tier, personal_bests = excluded.personal_bests,
    weeks_without_improvement = excluded.weeks_without_improvement,
    adjustments = excluded.adjustments, status = excluded.status, updated_at = excluded.updated_at
`, g.AthleteID, g.Sport, g.Tier.String(), bestsJSON, g.WeeksWithoutImprovement, adjustmentsJSON, string(g.Status), g.UpdatedAt)
	if err != nil {
		log.Error("failed to upsert speed goals: %v", err)
	}
	return err
}
