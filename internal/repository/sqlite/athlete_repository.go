package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
)

type athleteRepository struct {
	db *sql.DB
}

// NewAthleteRepository creates a new AthleteRepository implementation
func NewAthleteRepository(db *sql.DB) repository.AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) Get(ctx context.Context, id string) (*models.Athlete, error) {
	log := logger.FromContext(ctx).WithPrefix("athlete_repo")
	log.Debug("getting athlete: id=%s", id)

	var a models.Athlete
	var tier string
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, sport, tier, weight_lbs, created_at
FROM athletes
WHERE id = ?
`, id).Scan(&a.ID, &a.Name, &a.Sport, &tier, &a.WeightLbs, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("athlete not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get athlete: %v", err)
		return nil, err
	}
	if a.Tier, err = models.ParseTier(tier); err != nil {
		log.Error("bad tier on athlete row: %v", err)
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) List(ctx context.Context) ([]models.Athlete, error) {
	log := logger.FromContext(ctx).WithPrefix("athlete_repo")
	log.Debug("listing athletes")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, sport, tier, weight_lbs, created_at
FROM athletes
ORDER BY created_at
`)
	if err != nil {
		log.Error("failed to query athletes: %v", err)
		return nil, err
	}
	defer rows.Close()

	var athletes []models.Athlete
	for rows.Next() {
		var a models.Athlete
		var tier string
		if err := rows.Scan(&a.ID, &a.Name, &a.Sport, &tier, &a.WeightLbs, &a.CreatedAt); err != nil {
			log.Error("failed to scan athlete row: %v", err)
			return nil, err
		}
		if a.Tier, err = models.ParseTier(tier); err != nil {
			log.Error("bad tier on athlete row: %v", err)
			return nil, err
		}
		athletes = append(athletes, a)
	}
	log.Debug("found %d athletes", len(athletes))
	return athletes, rows.Err()
}

func (r *athleteRepository) Upsert(ctx context.Context, a models.Athlete) error {
	log := logger.FromContext(ctx).WithPrefix("athlete_repo")
	log.Debug("upserting athlete: id=%s, name=%s", a.ID, a.Name)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO athletes (id, name, sport, tier, weight_lbs)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET name = excluded.name, sport = excluded.sport,
    tier = excluded.tier, weight_lbs = excluded.weight_lbs
`, a.ID, a.Name, a.Sport, a.Tier.String(), a.WeightLbs)
	if err != nil {
		log.Error("failed to upsert athlete: %v", err)
	}
	return err
}

func (r *athleteRepository) UpdateTier(ctx context.Context, id string, tier models.Tier) error {
	log := logger.FromContext(ctx).WithPrefix("athlete_repo")
	log.Debug("updating athlete tier: id=%s, tier=%s", id, tier)

	_, err := r.db.ExecContext(ctx, `UPDATE athletes SET tier = ? WHERE id = ?`, tier.String(), id)
	if err != nil {
		log.Error("failed to update tier: %v", err)
	}
	return err
}
