package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrEmptySaveCode is returned by Insert when the caller hands over an empty
// payload. This is an exporter contract violation, not a transient failure.
var ErrEmptySaveCode = errors.New("empty save code")

// ErrInvalidKeep is returned by Prune for a negative retention count.
var ErrInvalidKeep = errors.New("retention count must not be negative")

type Database struct {
	Lock   sync.Mutex
	Cli    *gorm.DB
	Logger zerolog.Logger
	DryRun bool
}

// Insert appends a new backup and returns its assigned id. The write is a
// single-row transaction: either the full record lands or nothing does.
func (d *Database) Insert(ctx context.Context, saveCode string, at time.Time) (int64, error) {
	if saveCode == "" {
		return 0, ErrEmptySaveCode
	}

	d.Lock.Lock()
	defer d.Lock.Unlock()

	record := Backup{SaveCode: saveCode, CreatedAt: at.UTC()}

	if d.DryRun {
		d.Logger.Info().Object("backup", record).Msg("would insert backup")
		return 0, nil
	}

	if err := d.Cli.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, fmt.Errorf("could not insert backup: %w", err)
	}

	d.Logger.Debug().Object("backup", record).Msg("inserted backup")

	return record.ID, nil
}

// ListRecent returns up to limit backups, most recent first. Ties on
// created_at are broken by id, so insertion order always wins.
func (d *Database) ListRecent(ctx context.Context, limit int) ([]Backup, error) {
	if limit <= 0 {
		return nil, nil
	}

	d.Lock.Lock()
	defer d.Lock.Unlock()

	backups := []Backup{}
	err := d.Cli.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&backups).Error
	if err != nil {
		return nil, fmt.Errorf("could not list backups: %w", err)
	}

	return backups, nil
}

// Latest returns the most recent backup, or nil if the store is empty.
func (d *Database) Latest(ctx context.Context) (*Backup, error) {
	backups, err := d.ListRecent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(backups) == 0 {
		return nil, nil
	}
	return &backups[0], nil
}

func (d *Database) Count(ctx context.Context) (int64, error) {
	d.Lock.Lock()
	defer d.Lock.Unlock()

	var count int64
	if err := d.Cli.WithContext(ctx).Model(&Backup{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("could not count backups: %w", err)
	}
	return count, nil
}
