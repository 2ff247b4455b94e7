package service

import (
	"context"
	"time"

	"siwatours/internal/repository"

	"github.com/sirupsen/logrus"
)

// Sweeper periodically deletes verification tokens and sessions that are
// past their expiry, so stale rows do not accumulate.
type Sweeper struct {
	Verifications repository.VerificationTokenRepository
	Sessions      repository.SessionRepository
	Interval      time.Duration
	Logger        *logrus.Logger
}

func (s *Sweeper) Run(ctx context.Context) {
	interval := s.Interval
	if interval == 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if s.Verifications != nil {
		tokens, err := s.Verifications.DeleteExpired(ctx)
		if err != nil {
			s.logError(err, "verification token sweep failed")
		} else if tokens > 0 {
			s.logCount("tokens", tokens)
		}
	}
	if s.Sessions != nil {
		sessions, err := s.Sessions.CleanupExpired(ctx)
		if err != nil {
			s.logError(err, "session sweep failed")
		} else if sessions > 0 {
			s.logCount("sessions", sessions)
		}
	}
}

func (s *Sweeper) logError(err error, message string) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).Error(message)
}

func (s *Sweeper) logCount(kind string, count int64) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithFields(logrus.Fields{"kind": kind, "deleted": count}).Info("sweep")
}
