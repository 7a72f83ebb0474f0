package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cookie-keeper/ccbak/config"
)

var goodConfig = `
{
	"exporter": {
		"command": ["ccdump", "--session", "main"],
		"timeout": "30s"
	},
	"capture_interval": "5m",
	"retention_count": 50,
	"skip_unchanged": true,
	"max_save_size": "1MB"
}
`

var goodFileConfig = `
{
	"exporter": {
		"file": "/data/save.txt"
	},
	"cron": "*/10 * * * *"
}
`

var badConfig = `
[]
`

func TestLoad_Good(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.json")
	err := os.WriteFile(testFile, []byte(goodConfig), 0600)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFromFile(testFile)
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Exporter.Command) != 3 {
		t.Errorf("expected 3 command args, got %d", len(cfg.Exporter.Command))
	}

	if cfg.Exporter.Timeout.Duration != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.Exporter.Timeout.Duration)
	}

	if cfg.CaptureInterval.Duration != 5*time.Minute {
		t.Errorf("expected 5m interval, got %s", cfg.CaptureInterval.Duration)
	}

	if cfg.CronSchedule() != "@every 5m0s" {
		t.Errorf("expected @every 5m0s schedule, got %s", cfg.CronSchedule())
	}

	if cfg.RetentionCount != 50 {
		t.Errorf("expected retention 50, got %d", cfg.RetentionCount)
	}

	if !cfg.SkipUnchanged {
		t.Error("expected skip_unchanged")
	}

	if cfg.MaxSaveSize.Size != 1000000 {
		t.Errorf("expected max size 1000000, got %d", cfg.MaxSaveSize.Size)
	}
}

func TestLoad_GoodFileExporter(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.json")
	err := os.WriteFile(testFile, []byte(goodFileConfig), 0600)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFromFile(testFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Exporter.File != "/data/save.txt" {
		t.Errorf("expected file exporter, got %q", cfg.Exporter.File)
	}

	if cfg.CronSchedule() != "*/10 * * * *" {
		t.Errorf("expected cron schedule, got %s", cfg.CronSchedule())
	}
}

func TestLoad_Bad(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.json")
	err := os.WriteFile(testFile, []byte(badConfig), 0600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = config.LoadFromFile(testFile)
	if err == nil {
		t.Error("expected error")
	}
}

func TestLoad_NoFile(t *testing.T) {
	_, err := config.LoadFromFile("unexisting")
	if err == nil {
		t.Error("expected error")
	}
}

func TestLoad_Unreadable(t *testing.T) {
	_, err := config.LoadFromFile(t.TempDir())
	if err == nil {
		t.Error("expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			name: "command exporter with interval",
			cfg: config.Config{
				Exporter:        config.ExporterConfig{Command: []string{"ccdump"}},
				CaptureInterval: config.Duration{Duration: time.Minute},
			},
		},
		{
			name: "no exporter",
			cfg: config.Config{
				CaptureInterval: config.Duration{Duration: time.Minute},
			},
			wantErr: true,
		},
		{
			name: "both command and file",
			cfg: config.Config{
				Exporter: config.ExporterConfig{
					Command: []string{"ccdump"},
					File:    "/data/save.txt",
				},
				CaptureInterval: config.Duration{Duration: time.Minute},
			},
			wantErr: true,
		},
		{
			name: "no schedule",
			cfg: config.Config{
				Exporter: config.ExporterConfig{Command: []string{"ccdump"}},
			},
			wantErr: true,
		},
		{
			name: "both interval and cron",
			cfg: config.Config{
				Exporter:        config.ExporterConfig{Command: []string{"ccdump"}},
				CaptureInterval: config.Duration{Duration: time.Minute},
				Schedule:        "* * * * *",
			},
			wantErr: true,
		},
		{
			name: "negative retention",
			cfg: config.Config{
				Exporter:        config.ExporterConfig{Command: []string{"ccdump"}},
				CaptureInterval: config.Duration{Duration: time.Minute},
				RetentionCount:  -1,
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
