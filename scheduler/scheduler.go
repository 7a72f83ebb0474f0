package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type BackupJob interface {
	Run()
}

type SchedulerParams struct {
	Logger zerolog.Logger
}

func NewScheduler(params SchedulerParams) *Scheduler {
	cronLog := &cronLogger{parent: params.Logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLog),
			// A slow capture must not overlap with the next tick.
			cron.WithChain(cron.SkipIfStillRunning(cronLog)),
		),
		logger: params.Logger,
		jobs:   make(map[cron.EntryID]BackupJob),
	}
}

type Scheduler struct {
	cron   *cron.Cron
	jobs   map[cron.EntryID]BackupJob
	logger zerolog.Logger
}

// Start the scheduler in its own routine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// AddBackupJob schedules a job. The schedule is a cron expression or an
// "@every <duration>" descriptor.
func (s *Scheduler) AddBackupJob(ctx context.Context, schedule string, job BackupJob) error {
	entry, err := s.cron.AddJob(schedule, job)
	if err != nil {
		return fmt.Errorf("could not add backup job: %w", err)
	}

	s.jobs[entry] = job

	return nil
}

func (s *Scheduler) RemoveJobs() {
	for entry := range s.jobs {
		s.cron.Remove(entry)
		delete(s.jobs, entry)
	}
}

type cronLogger struct {
	parent zerolog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.parent.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.parent.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
