// Package backup implements the periodic save snapshot job.
package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cookie-keeper/ccbak/database"
	"github.com/cookie-keeper/ccbak/exporter"
)

// Job captures one save snapshot per run: export the code, persist it, then
// prune anything beyond the retention count. A failed run is not retried;
// the next scheduled run is the retry.
type Job struct {
	Exporter exporter.Exporter
	DB       *database.Database

	// Retention is the number of recent backups to keep after a successful
	// capture. Zero keeps everything.
	Retention int

	// SkipUnchanged skips the insert when the exported code is identical to
	// the latest stored backup.
	SkipUnchanged bool

	Ctx    context.Context
	Logger zerolog.Logger
}

// Run implements the scheduler job contract. Errors are logged and
// swallowed so the capture loop keeps going.
func (j *Job) Run() {
	if err := j.RunOnce(j.Ctx); err != nil {
		if j.Ctx.Err() != nil {
			j.Logger.Info().Msg("backup cancelled")
			return
		}
		j.Logger.Error().Err(err).Msg("backup failed")
	}
}

// RunOnce performs a single capture, persist and prune pass.
func (j *Job) RunOnce(ctx context.Context) error {
	code, err := j.Exporter.ExportSave(ctx)
	if err != nil {
		return fmt.Errorf("could not export save code: %w", err)
	}

	if j.SkipUnchanged {
		latest, err := j.DB.Latest(ctx)
		if err != nil {
			j.Logger.Warn().Err(err).Msg("could not read latest backup")
		} else if latest != nil && latest.SaveCode == code {
			j.Logger.Info().Int64("id", latest.ID).Msg("save code unchanged, skipping backup")
			return nil
		}
	}

	id, err := j.DB.Insert(ctx, code, time.Now())
	if err != nil {
		if errors.Is(err, database.ErrEmptySaveCode) {
			return fmt.Errorf("exporter returned an empty save code: %w", err)
		}
		return fmt.Errorf("could not persist backup: %w", err)
	}

	j.Logger.Info().Int64("id", id).Int("bytes", len(code)).Msg("backup done")

	if j.Retention > 0 {
		deleted, err := j.DB.Prune(ctx, j.Retention)
		if err != nil {
			// Non-fatal: the snapshot is already safe, retention catches up
			// on the next run.
			j.Logger.Error().Err(err).Msg("could not prune old backups")
		} else if deleted > 0 {
			j.Logger.Info().Int64("deleted", deleted).Int("keep", j.Retention).Msg("pruned old backups")
		}
	}

	return nil
}
