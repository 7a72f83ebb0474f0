package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cookie-keeper/ccbak/config"
	"github.com/cookie-keeper/ccbak/database"
)

func backupCommand(ctx context.Context, args Command, logger zerolog.Logger) error {
	if args.Backup.DryRun {
		logger = logger.With().Bool("dryrun", true).Logger()
	}

	cfg, err := config.LoadFromFile(args.Backup.Config)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	dbCli, err := newSQLite(args.Backup.Database, logger)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}

	db := &database.Database{
		Cli:    dbCli,
		Logger: logger,
		DryRun: args.Backup.DryRun,
	}

	startTime := time.Now()
	logger.Info().Msg("starting backup")
	defer func() {
		tookSeconds := time.Since(startTime).Seconds()
		if ctx.Err() != nil {
			logger.Info().Float64("seconds", tookSeconds).Msg("backup cancelled")
		} else {
			logger.Info().Float64("seconds", tookSeconds).Msg("backup done")
		}
	}()

	job := configToJob(ctx, cfg, db, logger)

	return job.RunOnce(ctx)
}
