package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
)

type regulationReportRepository struct {
	db *sql.DB
}

// NewRegulationReportRepository creates a new RegulationReportRepository implementation
func NewRegulationReportRepository(db *sql.DB) repository.RegulationReportRepository {
	return &regulationReportRepository{db: db}
}

func (r *regulationReportRepository) Get(ctx context.Context, athleteID, date string) (*models.RegulationReport, error) {
	log := logger.FromContext(ctx).WithPrefix("regulation_repo")
	log.Debug("getting regulation report: athlete_id=%s, date=%s", athleteID, date)

	var report models.RegulationReport
	var band string
	err := r.db.QueryRowContext(ctx, `
SELECT athlete_id, date, sleep_score, stress_score, physical_score, movement_score,
       load_score, fuel_score, calendar_score, composite, band, headline, summary, generated_at
FROM regulation_reports
WHERE athlete_id = ? AND date = ?
`, athleteID, date).Scan(&report.AthleteID, &report.Date,
		&report.Scores.Sleep, &report.Scores.Stress, &report.Scores.PhysicalReadiness,
		&report.Scores.Movement, &report.Scores.TrainingLoad, &report.Scores.Fuel,
		&report.Scores.Calendar, &report.Composite, &band,
		&report.Headline, &report.Summary, &report.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no report for date")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get regulation report: %v", err)
		return nil, err
	}
	report.Band = models.Band(band)
	return &report, nil
}

func (r *regulationReportRepository) Upsert(ctx context.Context, report models.RegulationReport) error {
	log := logger.FromContext(ctx).WithPrefix("regulation_repo")
	log.Debug("upserting regulation report: athlete_id=%s, date=%s, band=%s", report.AthleteID, report.Date, report.Band)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO regulation_reports (athlete_id, date, sleep_score, stress_score, physical_score,
    movement_score, load_score, fuel_score, calendar_score, composite, band, headline, summary, generated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(athlete_id, date) DO UPDATE SET
    sleep_score = excluded.sleep_score, stress_score = excluded.stress_score,
    physical_score = excluded.physical_score, movement_score = excluded.movement_score,
    load_score = excluded.load_score, fuel_score = excluded.fuel_score,
    calendar_score = excluded.calendar_score, composite = excluded.composite,
    band = excluded.band, headline = excluded.headline, summary = excluded.summary,
    generated_at = excluded.generated_at
`, report.AthleteID, report.Date,
		report.Scores.Sleep, report.Scores.Stress, report.Scores.PhysicalReadiness,
		report.Scores.Movement, report.Scores.TrainingLoad, report.Scores.Fuel,
		report.Scores.Calendar, report.Composite, string(report.Band),
		report.Headline, report.Summary, report.GeneratedAt)
	if err != nil {
		log.Error("failed to upsert regulation report: %v", err)
	}
	return err
}
