package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionSweeper periodically forgets tracking sessions whose visitor went away
type SessionSweeper struct {
	tracking *TrackingService
	ttl      time.Duration
	spec     string
	cron     *cron.Cron
	log      *zap.SugaredLogger
}

// NewSessionSweeper creates a sweeper that runs on the given cron spec
func NewSessionSweeper(tracking *TrackingService, ttl time.Duration, spec string, log *zap.SugaredLogger) *SessionSweeper {
	return &SessionSweeper{
		tracking: tracking,
		ttl:      ttl,
		spec:     spec,
		cron:     cron.New(),
		log:      log,
	}
}

// Start schedules the sweep and starts the scheduler
func (s *SessionSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infow("🚀 Session sweeper started", "spec", s.spec, "ttl", s.ttl)
	return nil
}

// Stop stops the scheduler and waits for a running sweep
func (s *SessionSweeper) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("🛑 Session sweeper stopped")
}

// Sweep runs one pass
func (s *SessionSweeper) Sweep() {
	if n := s.tracking.SweepSessions(s.ttl); n > 0 {
		s.log.Debugw("🧹 Expired tracking sessions removed", "count", n)
	}
}
