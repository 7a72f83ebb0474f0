// Package exporter obtains save codes from a running game session.
package exporter

import "context"

// Exporter produces the game's exportable save code on demand. How the code
// is obtained (browser sidecar, API shim, dump file) is the implementation's
// business; callers only need a code or an error.
type Exporter interface {
	ExportSave(ctx context.Context) (string, error)
}
