package exporter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// CommandExporter runs an external command and treats its trimmed stdout as
// the save code. The command is expected to talk to the game session and
// exit zero on success.
type CommandExporter struct {
	Argv     []string
	Timeout  time.Duration
	MaxBytes int64
	Logger   zerolog.Logger
}

func (c *CommandExporter) ExportSave(ctx context.Context) (string, error) {
	if len(c.Argv) == 0 {
		return "", fmt.Errorf("no exporter command configured")
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	startTime := time.Now()
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("exporter command failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("exporter command failed: %w", err)
	}

	if c.MaxBytes > 0 && int64(stdout.Len()) > c.MaxBytes {
		return "", fmt.Errorf("save code is %d bytes, above the %d byte limit", stdout.Len(), c.MaxBytes)
	}

	code := strings.TrimSpace(stdout.String())

	c.Logger.Debug().
		Str("command", c.Argv[0]).
		Int("bytes", len(code)).
		Float64("seconds", time.Since(startTime).Seconds()).
		Msg("exported save code")

	return code, nil
}
