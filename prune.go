package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cookie-keeper/ccbak/database"
)

func pruneCommand(ctx context.Context, args Command, logger zerolog.Logger) error {
	if args.Prune.DryRun {
		logger = logger.With().Bool("dryrun", true).Logger()
	}

	dbCli, err := newSQLite(args.Prune.Database, logger)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}

	db := &database.Database{
		Cli:    dbCli,
		Logger: logger,
		DryRun: args.Prune.DryRun,
	}

	deleted, err := db.Prune(ctx, args.Prune.Keep)
	if err != nil {
		return err
	}

	logger.Info().Int64("deleted", deleted).Int("keep", args.Prune.Keep).Msg("prune done")

	return nil
}
