// Package scheduler drives the early-morning refresh: ahead of the
// first app open of the day, every athlete's drill selection and
// readiness report are recomputed in the background.
package scheduler

import (
	"context"

	"github.com/robfig/cron"

	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/repository"
	"github.com/mviana/trainflow/internal/services"
	"github.com/mviana/trainflow/internal/worker"
)

type Scheduler struct {
	cron       *cron.Cron
	spec       string
	athletes   repository.AthleteRepository
	drills     services.DrillService
	regulation services.RegulationService
	pool       *worker.Pool
	log        *logger.Logger
}

// New creates a Scheduler. spec is a cron expression with seconds,
// e.g. "0 0 5 * * *" for 5am daily.
func New(
	spec string,
	athletes repository.AthleteRepository,
	drills services.DrillService,
	regulation services.RegulationService,
	pool *worker.Pool,
) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		spec:       spec,
		athletes:   athletes,
		drills:     drills,
		regulation: regulation,
		pool:       pool,
		log:        logger.Default().WithPrefix("scheduler"),
	}
}

// Start registers the refresh entry and starts the cron loop.
func (s *Scheduler) Start() error {
	if err := s.cron.AddFunc(s.spec, s.refreshAll); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("daily refresh scheduled: %s", s.spec)
	return nil
}

// Stop halts the cron loop. Jobs already queued on the pool keep
// running.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

// refreshAll enqueues a selection and regulation refresh per athlete.
// Over-capacity jobs are dropped; the on-demand path computes on first
// read anyway.
func (s *Scheduler) refreshAll() {
	ctx := logger.NewContext(context.Background(), s.log)
	athletes, err := s.athletes.List(ctx)
	if err != nil {
		s.log.Error("failed to list athletes for refresh: %v", err)
		return
	}

	queued := 0
	for _, a := range athletes {
		if s.pool.TrySubmit(&worker.SelectionRefreshJob{
			DrillService: s.drills,
			AthleteID:    a.ID,
			Sport:        a.Sport,
		}) {
			queued++
		}
		if s.pool.TrySubmit(&worker.RegulationRefreshJob{
			RegulationService: s.regulation,
			AthleteID:         a.ID,
		}) {
			queued++
		}
	}
	s.log.Info("daily refresh enqueued %d jobs for %d athletes", queued, len(athletes))
}
