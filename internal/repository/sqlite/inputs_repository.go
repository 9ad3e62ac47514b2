package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/repository"
)

type wellnessRepository struct {
	db *sql.DB
}

// NewWellnessRepository creates a new WellnessRepository implementation
func NewWellnessRepository(db *sql.DB) repository.WellnessRepository {
	return &wellnessRepository{db: db}
}

func (r *wellnessRepository) Upsert(ctx context.Context, athleteID string, a models.WellnessAnswers) error {
	log := logger.FromContext(ctx).WithPrefix("wellness_repo")
	log.Debug("upserting wellness answers: athlete_id=%s, date=%s, checkpoint=%s", athleteID, a.Date, a.Checkpoint)

	movementJSON, err := toJSON(a.Movement)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO wellness_answers (athlete_id, date, checkpoint, sleep_rating, stress_rating, physical_readiness, movement)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(athlete_id, date, checkpoint) DO UPDATE SET
    sleep_rating = excluded.sleep_rating, stress_rating = excluded.stress_rating,
    physical_readiness = excluded.physical_readiness, movement = excluded.movement
`, athleteID, a.Date, string(a.Checkpoint), a.SleepRating, a.StressRating, a.PhysicalReadiness, movementJSON)
	if err != nil {
		log.Error("failed to upsert wellness answers: %v", err)
	}
	return err
}

func (r *wellnessRepository) ForDate(ctx context.Context, athleteID, date string) ([]models.WellnessAnswers, error) {
	log := logger.FromContext(ctx).WithPrefix("wellness_repo")
	log.Debug("listing wellness answers: athlete_id=%s, date=%s", athleteID, date)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, athlete_id, date, checkpoint, sleep_rating, stress_rating, physical_readiness, movement, created_at
FROM wellness_answers
WHERE athlete_id = ? AND date = ?
`, athleteID, date)
	if err != nil {
		log.Error("failed to query wellness answers: %v", err)
		return nil, err
	}
	defer rows.Close()

	var answers []models.WellnessAnswers
	for rows.Next() {
		var a models.WellnessAnswers
		var checkpoint, movementJSON string
		if err := rows.Scan(&a.ID, &a.AthleteID, &a.Date, &checkpoint, &a.SleepRating, &a.StressRating, &a.PhysicalReadiness, &movementJSON, &a.CreatedAt); err != nil {
			log.Error("failed to scan wellness row: %v", err)
			return nil, err
		}
		a.Checkpoint = models.Checkpoint(checkpoint)
		if err := fromJSON(movementJSON, &a.Movement); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

type trainingLoadRepository struct {
	db *sql.DB
}

// NewTrainingLoadRepository creates a new TrainingLoadRepository implementation
func NewTrainingLoadRepository(db *sql.DB) repository.TrainingLoadRepository {
	return &trainingLoadRepository{db: db}
}

func (r *trainingLoadRepository) Upsert(ctx context.Context, athleteID string, l models.TrainingLoad) error {
	log := logger.FromContext(ctx).WithPrefix("load_repo")
	log.Debug("upserting training load: athlete_id=%s, date=%s, load=%.1f", athleteID, l.Date, l.Load)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO training_loads (athlete_id, date, load)
VALUES (?, ?, ?)
ON CONFLICT(athlete_id, date) DO UPDATE SET load = excluded.load
`, athleteID, l.Date, l.Load)
	if err != nil {
		log.Error("failed to upsert training load: %v", err)
	}
	return err
}

func (r *trainingLoadRepository) Between(ctx context.Context, athleteID, fromDate, toDate string) ([]models.TrainingLoad, error) {
	log := logger.FromContext(ctx).WithPrefix("load_repo")
	log.Debug("listing training loads: athlete_id=%s, from=%s, to=%s", athleteID, fromDate, toDate)

	query := sqlBuilder.Select("id", "date", "load").
		From("training_loads").
		Where(squirrel.Eq{"athlete_id": athleteID}).
		Where(squirrel.GtOrEq{"date": fromDate}).
		Where(squirrel.LtOrEq{"date": toDate}).
		OrderBy("date ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build load query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query training loads: %v", err)
		return nil, err
	}
	defer rows.Close()

	var loads []models.TrainingLoad
	for rows.Next() {
		var l models.TrainingLoad
		if err := rows.Scan(&l.ID, &l.Date, &l.Load); err != nil {
			log.Error("failed to scan load row: %v", err)
			return nil, err
		}
		l.AthleteID = athleteID
		loads = append(loads, l)
	}
	return loads, rows.Err()
}

type nutritionRepository struct {
	db *sql.DB
}

// NewNutritionRepository creates a new NutritionRepository implementation
func NewNutritionRepository(db *sql.DB) repository.NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) Upsert(ctx context.Context, athleteID, date string, totals models.NutritionTotals) error {
	log := logger.FromContext(ctx).WithPrefix("nutrition_repo")
	log.Debug("upserting nutrition: athlete_id=%s, date=%s, calories=%.0f", athleteID, date, totals.Calories)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO nutrition_days (athlete_id, date, calories, protein_g)
VALUES (?, ?, ?, ?)
ON CONFLICT(athlete_id, date) DO UPDATE SET
    calories = excluded.calories, protein_g = excluded.protein_g
`, athleteID, date, totals.Calories, totals.ProteinG)
	if err != nil {
		log.Error("failed to upsert nutrition: %v", err)
	}
	return err
}

func (r *nutritionRepository) ForDate(ctx context.Context, athleteID, date string) (*models.NutritionTotals, error) {
	log := logger.FromContext(ctx).WithPrefix("nutrition_repo")

	var totals models.NutritionTotals
	err := r.db.QueryRowContext(ctx, `
SELECT calories, protein_g FROM nutrition_days WHERE athlete_id = ? AND date = ?
`, athleteID, date).Scan(&totals.Calories, &totals.ProteinG)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get nutrition: %v", err)
		return nil, err
	}
	totals.AthleteID = athleteID
	totals.Date = date
	return &totals, nil
}

type calendarRepository struct {
	db *sql.DB
}

// NewCalendarRepository creates a new CalendarRepository implementation
func NewCalendarRepository(db *sql.DB) repository.CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) Insert(ctx context.Context, athleteID string, e models.CalendarEvent) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("calendar_repo")
	log.Debug("inserting calendar event: athlete_id=%s, date=%s, title=%s", athleteID, e.Date, e.Title)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO calendar_events (athlete_id, date, title, competitive)
VALUES (?, ?, ?, ?)
`, athleteID, e.Date, e.Title, e.Competitive)
	if err != nil {
		log.Error("failed to insert calendar event: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *calendarRepository) Between(ctx context.Context, athleteID, fromDate, toDate string) ([]models.CalendarEvent, error) {
	log := logger.FromContext(ctx).WithPrefix("calendar_repo")
	log.Debug("listing calendar events: athlete_id=%s, from=%s, to=%s", athleteID, fromDate, toDate)

	query := sqlBuilder.Select("id", "date", "title", "competitive").
		From("calendar_events").
		Where(squirrel.Eq{"athlete_id": athleteID}).
		Where(squirrel.GtOrEq{"date": fromDate}).
		Where(squirrel.LtOrEq{"date": toDate}).
		OrderBy("date ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build event query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query calendar events: %v", err)
		return nil, err
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		var e models.CalendarEvent
		if err := rows.Scan(&e.ID, &e.Date, &e.Title, &e.Competitive); err != nil {
			log.Error("failed to scan event row: %v", err)
			return nil, err
		}
		e.AthleteID = athleteID
		events = append(events, e)
	}
	return events, rows.Err()
}
