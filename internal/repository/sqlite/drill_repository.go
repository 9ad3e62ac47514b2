package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
)

type drillAttemptRepository struct {
	db *sql.DB
}

// NewDrillAttemptRepository creates a new DrillAttemptRepository implementation
func NewDrillAttemptRepository(db *sql.DB) repository.DrillAttemptRepository {
	return &drillAttemptRepository{db: db}
}

func (r *drillAttemptRepository) Insert(ctx context.Context, a models.DrillAttempt) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("inserting drill attempt: athlete_id=%s, drill_id=%s, accuracy=%.1f", a.AthleteID, a.DrillID, a.Accuracy)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO drill_attempts (athlete_id, sport, drill_id, accuracy, completed_at)
VALUES (?, ?, ?, ?, ?)
`, a.AthleteID, a.Sport, a.DrillID, a.Accuracy, a.CompletedAt)
	if err != nil {
		log.Error("failed to insert drill attempt: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get attempt id: %v", err)
		return 0, err
	}
	log.Debug("drill attempt inserted: id=%d", id)
	return id, nil
}

func (r *drillAttemptRepository) ListByAthlete(ctx context.Context, athleteID, sport string) ([]models.DrillAttempt, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("listing drill attempts: athlete_id=%s, sport=%s", athleteID, sport)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, athlete_id, sport, drill_id, accuracy, completed_at
FROM drill_attempts
WHERE athlete_id = ? AND sport = ?
ORDER BY completed_at
`, athleteID, sport)
	if err != nil {
		log.Error("failed to query drill attempts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var attempts []models.DrillAttempt
	for rows.Next() {
		var a models.DrillAttempt
		if err := rows.Scan(&a.ID, &a.AthleteID, &a.Sport, &a.DrillID, &a.Accuracy, &a.CompletedAt); err != nil {
			log.Error("failed to scan attempt row: %v", err)
			return nil, err
		}
		attempts = append(attempts, a)
	}
	log.Debug("found %d drill attempts", len(attempts))
	return attempts, rows.Err()
}

type selectionRepository struct {
	db *sql.DB
}

// NewSelectionRepository creates a new SelectionRepository implementation
func NewSelectionRepository(db *sql.DB) repository.SelectionRepository {
	return &selectionRepository{db: db}
}

func (r *selectionRepository) Get(ctx context.Context, athleteID, sport, date string) (*models.DailySelection, error) {
	log := logger.FromContext(ctx).WithPrefix("selection_repo")
	log.Debug("getting daily selection: athlete_id=%s, sport=%s, date=%s", athleteID, sport, date)

	var s models.DailySelection
	var tier, drillsJSON, reasonsJSON string
	err := r.db.QueryRowContext(ctx, `
SELECT id, athlete_id, sport, date, tier, drills, reasons, created_at
FROM daily_selections
WHERE athlete_id = ? AND sport = ? AND date = ?
`, athleteID, sport, date).Scan(&s.ID, &s.AthleteID, &s.Sport, &s.Date, &tier, &drillsJSON, &reasonsJSON, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no stored selection")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get daily selection: %v", err)
		return nil, err
	}
	if s.Tier, err = models.ParseTier(tier); err != nil {
		return nil, err
	}
	if err := fromJSON(drillsJSON, &s.Drills); err != nil {
		log.Error("failed to decode drills column: %v", err)
		return nil, err
	}
	if err := fromJSON(reasonsJSON, &s.Reasons); err != nil {
		log.Error("failed to decode reasons column: %v", err)
		return nil, err
	}
	log.Debug("selection found: %d drills", len(s.Drills))
	return &s, nil
}

func (r *selectionRepository) Upsert(ctx context.Context, s models.DailySelection) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("selection_repo")
	log.Debug("upserting daily selection: athlete_id=%s, sport=%s, date=%s, drills=%d", s.AthleteID, s.Sport, s.Date, len(s.Drills))

	drillsJSON, err := toJSON(s.Drills)
	if err != nil {
		return 0, err
	}
	reasonsJSON, err := toJSON(s.Reasons)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO daily_selections (athlete_id, sport, date, tier, drills, reasons)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(athlete_id, sport, date) DO UPDATE SET
    tier = excluded.tier, drills = excluded.drills, reasons = excluded.reasons
`, s.AthleteID, s.Sport, s.Date, s.Tier.String(), drillsJSON, reasonsJSON)
	if err != nil {
		log.Error("failed to upsert daily selection: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *selectionRepository) Delete(ctx context.Context, athleteID, sport, date string) error {
	log := logger.FromContext(ctx).WithPrefix("selection_repo")
	log.Debug("deleting daily selection: athlete_id=%s, sport=%s, date=%s", athleteID, sport, date)

	_, err := r.db.ExecContext(ctx, `
DELETE FROM daily_selections WHERE athlete_id = ? AND sport = ? AND date = ?
`, athleteID, sport, date)
	if err != nil {
		log.Error("failed to delete daily selection: %v", err)
	}
	return err
}
