package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mviana/trainflow/internal/api"
	"github.com/mviana/trainflow/internal/config"
	"github.com/mviana/trainflow/internal/db"
	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/narrative"
	"github.com/mviana/trainflow/internal/repository/sqlite"
	"github.com/mviana/trainflow/internal/scheduler"
	"github.com/mviana/trainflow/internal/services"
	"github.com/mviana/trainflow/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("TrainFlow Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("daily_drill_count=%d", cfg.DailyDrillCount)
	log.Debug("plateau_threshold=%d", cfg.PlateauThreshold)
	log.Debug("session_cooldown_hours=%d", cfg.CooldownHours)
	log.Debug("refresh_cron=%s enabled=%t", cfg.RefreshCron, cfg.RefreshEnabled)
	log.Debug("worker_count=%d queue_size=%d", cfg.WorkerCount, cfg.QueueSize)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	athleteRepo := sqlite.NewAthleteRepository(database.DB)
	attemptRepo := sqlite.NewDrillAttemptRepository(database.DB)
	selectionRepo := sqlite.NewSelectionRepository(database.DB)
	sessionRepo := sqlite.NewSpeedSessionRepository(database.DB)
	goalsRepo := sqlite.NewSpeedGoalsRepository(database.DB)
	wellnessRepo := sqlite.NewWellnessRepository(database.DB)
	loadRepo := sqlite.NewTrainingLoadRepository(database.DB)
	nutritionRepo := sqlite.NewNutritionRepository(database.DB)
	calendarRepo := sqlite.NewCalendarRepository(database.DB)
	reportRepo := sqlite.NewRegulationReportRepository(database.DB)

	// Narrative generation is optional; nil means fallback text.
	generator := narrative.New(cfg.OpenAIKey, cfg.OpenAIModel)
	if generator == nil {
		log.Info("no OpenAI key configured, reports use fallback narratives")
	}

	// Services
	athleteService := services.NewAthleteService(athleteRepo)
	drillService := services.NewDrillService(athleteRepo, attemptRepo, selectionRepo, cfg.DailyDrillCount)
	speedService := services.NewSpeedService(athleteRepo, sessionRepo, goalsRepo,
		cfg.PlateauThreshold, time.Duration(cfg.CooldownHours)*time.Hour)
	regulationService := services.NewRegulationService(athleteRepo, wellnessRepo, loadRepo,
		nutritionRepo, calendarRepo, reportRepo, generator)
	intakeService := services.NewIntakeService(athleteRepo, wellnessRepo, loadRepo, nutritionRepo, calendarRepo)

	refreshPool := worker.NewPool(cfg.WorkerCount, cfg.QueueSize)

	srv := &api.Server{
		Athletes:   athleteService,
		Drills:     drillService,
		Speed:      speedService,
		Regulation: regulationService,
		Intake:     intakeService,
	}

	ctx, cancel := context.WithCancel(context.Background())
	refreshPool.Start(ctx)

	var sched *scheduler.Scheduler
	if cfg.RefreshEnabled {
		sched = scheduler.New(cfg.RefreshCron, athleteRepo, drillService, regulationService, refreshPool)
		if err := sched.Start(); err != nil {
			log.Error("failed to start scheduler: %v", err)
			os.Exit(1)
		}
	} else {
		log.Info("background refresh disabled")
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if sched != nil {
		log.Debug("stopping scheduler")
		sched.Stop()
	}

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	refreshPool.Stop()

	log.Info("===========================================")
	log.Info("TrainFlow Server Stopped")
	log.Info("===========================================")
}
