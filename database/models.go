package database

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"
)

// Backup is a single persisted save snapshot. Rows are immutable after
// insert; the only delete path is retention pruning.
type Backup struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;index:idx_backups_recency,sort:desc,priority:2"`
	SaveCode  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_backups_recency,sort:desc,priority:1"`
}

// The save code is an opaque blob and can be large, so log a content hash
// instead of the payload itself.
func (b Backup) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("id", b.ID)
	e.Time("created_at", b.CreatedAt)
	e.Int("bytes", len(b.SaveCode))
	e.Str("code_hash", fmt.Sprintf("%016x", xxhash.Sum64String(b.SaveCode)))
}
