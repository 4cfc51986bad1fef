package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Sweeper removes idle sessions and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// Scheduler manages background cron tasks.
type Scheduler struct {
	Cron     *cron.Cron
	Sessions Sweeper
	// OnSweep, if set, receives the count from every sweep run.
	OnSweep  func(removed int)

	log zerolog.Logger
}

// NewScheduler creates a Scheduler using six-field cron specs.
func NewScheduler(sessions Sweeper, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Sessions: sessions,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterSweep runs the idle-session sweep on spec.
func (s *Scheduler) RegisterSweep(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.SweepNow); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	s.log.Debug().Str("spec", spec).Msg("sweep task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// SweepNow runs the sweep immediately.
func (s *Scheduler) SweepNow() {
	removed := s.Sessions.Sweep()
	if s.OnSweep != nil {
		s.OnSweep(removed)
	}
}
