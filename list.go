package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"

	"github.com/cookie-keeper/ccbak/database"
)

func listCommand(ctx context.Context, args Command, logger zerolog.Logger) error {
	dbCli, err := newSQLite(args.List.Database, logger)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}

	db := &database.Database{Cli: dbCli, Logger: logger}

	backups, err := db.ListRecent(ctx, args.List.Limit)
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		logger.Info().Msg("no backups found")
		return nil
	}

	for _, b := range backups {
		fmt.Println(formatBackup(b))
	}

	return nil
}

func formatBackup(b database.Backup) string {
	return fmt.Sprintf("%d\t%s\t%d bytes\t%016x",
		b.ID,
		b.CreatedAt.Format(time.RFC3339),
		len(b.SaveCode),
		xxhash.Sum64String(b.SaveCode),
	)
}
