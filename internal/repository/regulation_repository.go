package repository

import (
	"context"

	"github.com/mviana/trainflow/internal/models"
)

// RegulationReportRepository handles the daily readiness reports.
// One row per (athlete, date); Upsert overwrites the prior row.
type RegulationReportRepository interface {
	Get(ctx context.Context, athleteID, date string) (*models.RegulationReport, error)
	Upsert(ctx context.Context, report models.RegulationReport) error
}
