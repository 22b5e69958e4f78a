package session

import (
	"context"
	"time"

	"github.com/dom/gameshelf/internal/metrics"
	"github.com/dom/gameshelf/internal/repository"
	"go.uber.org/zap"
)

// Sweeper periodically deletes expired session records.
type Sweeper struct {
	sessions repository.SessionRepository
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewSweeper(sessions repository.SessionRepository, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("session sweep failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.SessionsSwept.Add(float64(n))
		s.logger.Debug("expired sessions removed", zap.Int64("count", n))
	}
	return n, nil
}
