package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Prune deletes all but the keep most recent backups and returns the number
// of rows deleted. The read establishing "most recent keep" and the delete
// run in one transaction, so a backup inserted concurrently is never pruned
// before it has been counted.
func (d *Database) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, ErrInvalidKeep
	}

	d.Lock.Lock()
	defer d.Lock.Unlock()

	if d.DryRun {
		var total int64
		if err := d.Cli.WithContext(ctx).Model(&Backup{}).Count(&total).Error; err != nil {
			return 0, fmt.Errorf("could not count backups: %w", err)
		}
		prunable := total - int64(keep)
		if prunable < 0 {
			prunable = 0
		}
		d.Logger.Info().Int64("backups", prunable).Int("keep", keep).Msg("would prune backups")
		return prunable, nil
	}

	var deleted int64
	err := d.Cli.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recent := tx.Model(&Backup{}).
			Select("id").
			Order("created_at DESC, id DESC").
			Limit(keep)

		res := tx.Where("id NOT IN (?)", recent).Delete(&Backup{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("could not prune backups: %w", err)
	}

	if deleted > 0 {
		d.Logger.Debug().Int64("deleted", deleted).Int("keep", keep).Msg("pruned backups")
	}

	return deleted, nil
}
