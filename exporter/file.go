package exporter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// FileExporter reads the save code from a file the game session keeps up to
// date, e.g. a volume the browser container dumps its save into.
type FileExporter struct {
	Path     string
	MaxBytes int64
	Logger   zerolog.Logger
}

func (f *FileExporter) ExportSave(ctx context.Context) (string, error) {
	if f.Path == "" {
		return "", fmt.Errorf("no exporter file configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("could not read save file: %w", err)
	}

	if f.MaxBytes > 0 && int64(len(raw)) > f.MaxBytes {
		return "", fmt.Errorf("save code is %d bytes, above the %d byte limit", len(raw), f.MaxBytes)
	}

	code := strings.TrimSpace(string(raw))

	f.Logger.Debug().
		Str("path", f.Path).
		Int("bytes", len(code)).
		Msg("exported save code")

	return code, nil
}
