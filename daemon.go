package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cookie-keeper/ccbak/backup"
	"github.com/cookie-keeper/ccbak/config"
	"github.com/cookie-keeper/ccbak/database"
	"github.com/cookie-keeper/ccbak/exporter"
	"github.com/cookie-keeper/ccbak/fileutils"
	"github.com/cookie-keeper/ccbak/scheduler"
)

func daemonCommand(ctx context.Context, args Command, logger zerolog.Logger) error {
	if args.Daemon.DryRun {
		logger = logger.With().Bool("dryrun", true).Logger()
	}

	cfg, err := config.LoadFromFile(args.Daemon.Config)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	dbCli, err := newSQLite(args.Daemon.Database, logger)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}

	db := &database.Database{
		Cli:    dbCli,
		Logger: logger,
		DryRun: args.Daemon.DryRun,
	}

	sched := scheduler.NewScheduler(scheduler.SchedulerParams{
		Logger: logger,
	})

	if err := addCaptureJobFromConfig(ctx, sched, cfg, db, logger); err != nil {
		return fmt.Errorf("could not add capture job: %w", err)
	}

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	startConfigFileWatcher(ctx, args.Daemon.Config, logger, ticker, func(cfg *config.Config) {
		sched.RemoveJobs()
		if err := addCaptureJobFromConfig(ctx, sched, cfg, db, logger); err != nil {
			logger.Error().Err(err).Msg("could not add capture job")
		}
	})

	sched.Start()
	defer sched.Stop()

	<-ctx.Done()

	return nil
}

func addCaptureJobFromConfig(
	ctx context.Context,
	sched *scheduler.Scheduler,
	cfg *config.Config,
	db *database.Database,
	logger zerolog.Logger,
) error {
	job := configToJob(ctx, cfg, db, logger)

	if err := sched.AddBackupJob(ctx, cfg.CronSchedule(), job); err != nil {
		return err
	}

	logger.Info().Object("config", *cfg).Msg("added capture job")
	return nil
}

func configToJob(
	ctx context.Context,
	cfg *config.Config,
	db *database.Database,
	logger zerolog.Logger,
) *backup.Job {
	return &backup.Job{
		Exporter:      exporterFromConfig(cfg, logger),
		DB:            db,
		Retention:     cfg.RetentionCount,
		SkipUnchanged: cfg.SkipUnchanged,
		Ctx:           ctx,
		Logger:        logger,
	}
}

func exporterFromConfig(cfg *config.Config, logger zerolog.Logger) exporter.Exporter {
	if len(cfg.Exporter.Command) > 0 {
		return &exporter.CommandExporter{
			Argv:     cfg.Exporter.Command,
			Timeout:  cfg.Exporter.Timeout.Duration,
			MaxBytes: cfg.MaxSaveSize.Size,
			Logger:   logger,
		}
	}
	return &exporter.FileExporter{
		Path:     cfg.Exporter.File,
		MaxBytes: cfg.MaxSaveSize.Size,
		Logger:   logger,
	}
}

func startConfigFileWatcher(ctx context.Context, cfgPath string, logger zerolog.Logger, ticker *time.Ticker, onChanged func(cfg *config.Config)) {
	logger.Info().Str("path", cfgPath).Msg("watching config file for changes")
	watcher, err := fileutils.WatchFile(ctx, cfgPath, when(ticker.C), func(err error) {
		logger.Error().Err(err).Msg("could not watch config file")
	})
	if err != nil {
		logger.Error().Err(err).Msg("could not watch config file")
		return
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-watcher:
				logger.Info().Str("path", cfgPath).Msg("config file changed, reloading")

				cfg, err := config.LoadFromFile(cfgPath)
				if err != nil {
					logger.Error().Err(err).Msg("could not load config")
					break
				}

				onChanged(cfg)
			}
		}
	}()
}

func when[T any](ch <-chan T) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		defer close(out)
		for range ch {
			out <- struct{}{}
		}
	}()
	return out
}
