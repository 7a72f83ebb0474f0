package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Config struct {
	Exporter        ExporterConfig `json:"exporter"`
	CaptureInterval Duration       `json:"capture_interval,omitempty"`
	Schedule        string         `json:"cron,omitempty"`
	RetentionCount  int            `json:"retention_count,omitempty"`
	SkipUnchanged   bool           `json:"skip_unchanged,omitempty"`
	MaxSaveSize     SizeArgument   `json:"max_save_size,omitempty"`
}

type ExporterConfig struct {
	Command []string `json:"command,omitempty"`
	File    string   `json:"file,omitempty"`
	Timeout Duration `json:"timeout,omitempty"`
}

func (c *Config) Validate() error {
	if len(c.Exporter.Command) > 0 && c.Exporter.File != "" {
		return fmt.Errorf("exporter must have either a command or a file, not both")
	}
	if len(c.Exporter.Command) == 0 && c.Exporter.File == "" {
		return fmt.Errorf("exporter must have a command or a file")
	}
	if c.CaptureInterval.Duration > 0 && c.Schedule != "" {
		return fmt.Errorf("capture_interval and cron are mutually exclusive")
	}
	if c.CaptureInterval.Duration <= 0 && c.Schedule == "" {
		return fmt.Errorf("a capture_interval or a cron schedule is required")
	}
	if c.RetentionCount < 0 {
		return fmt.Errorf("retention_count must not be negative")
	}
	return nil
}

// CronSchedule returns the schedule that drives the capture loop.
func (c *Config) CronSchedule() string {
	if c.Schedule != "" {
		return c.Schedule
	}
	return "@every " + c.CaptureInterval.Duration.String()
}

func (c Config) MarshalZerologObject(e *zerolog.Event) {
	if len(c.Exporter.Command) > 0 {
		e.Strs("command", c.Exporter.Command)
	}
	if c.Exporter.File != "" {
		e.Str("file", c.Exporter.File)
	}
	e.Str("schedule", c.CronSchedule())
	e.Int("retention_count", c.RetentionCount)

	if c.SkipUnchanged {
		e.Bool("skip_unchanged", true)
	}
	if c.MaxSaveSize.Size > 0 {
		e.Int64("max_save_size", c.MaxSaveSize.Size)
	}
}
