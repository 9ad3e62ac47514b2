package worker

import (
	"context"

	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/services"
)

// SelectionRefreshJob recomputes one athlete's daily drill selection.
type SelectionRefreshJob struct {
	DrillService services.DrillService
	AthleteID    string
	Sport        string
}

func (j *SelectionRefreshJob) Name() string { return "selection_refresh" }

func (j *SelectionRefreshJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("athlete_id", j.AthleteID)
	selection, err := j.DrillService.RefreshSelection(ctx, j.AthleteID, j.Sport)
	if err != nil {
		return err
	}
	log.Info("selection refreshed: %d drills", len(selection.Drills))
	return nil
}

// RegulationRefreshJob recomputes one athlete's readiness report.
type RegulationRefreshJob struct {
	RegulationService services.RegulationService
	AthleteID         string
}

func (j *RegulationRefreshJob) Name() string { return "regulation_refresh" }

func (j *RegulationRefreshJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("athlete_id", j.AthleteID)
	report, err := j.RegulationService.Refresh(ctx, j.AthleteID)
	if err != nil {
		return err
	}
	log.Info("regulation report refreshed: composite=%d, band=%s", report.Composite, report.Band)
	return nil
}
