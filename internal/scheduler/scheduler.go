package scheduler

import (
	"context"
	"time"

	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sessionSweeper interface {
	CompleteElapsed(ctx context.Context) ([]*domain.Session, error)
}

// Scheduler periodically completes scheduled sessions whose end time passed.
type Scheduler struct {
	sessionService sessionSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	sessionService sessionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessionService: sessionService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.sessionService.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, sess := range completed {
		s.logger.Info("session completed",
			logger.String("session_id", sess.ID),
			logger.String("tutor_id", sess.TutorID),
			logger.String("student_id", sess.StudentID),
		)
	}
}
