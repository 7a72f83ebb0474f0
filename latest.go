package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cookie-keeper/ccbak/database"
)

func latestCommand(ctx context.Context, args Command, logger zerolog.Logger) error {
	dbCli, err := newSQLite(args.Latest.Database, logger)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}

	db := &database.Database{Cli: dbCli, Logger: logger}

	latest, err := db.Latest(ctx)
	if err != nil {
		return err
	}
	if latest == nil {
		return fmt.Errorf("no backups found")
	}

	if args.Latest.Code {
		// Raw code on stdout so it can be piped back into the game.
		fmt.Println(latest.SaveCode)
		return nil
	}

	fmt.Println(formatBackup(*latest))

	return nil
}
