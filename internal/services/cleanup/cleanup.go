package cleanup

import (
	"context"
	"sync"
	"time"

	"github.com/killallgit/podcast-search/pkg/logger"
)

// Pruner removes mirrored rows last seen before a cutoff
type Pruner interface {
	PruneSeenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service periodically drops mirror rows the upstream catalog stopped returning
type Service struct {
	pruner   Pruner
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service
func NewService(pruner Pruner, maxAge, interval time.Duration) *Service {
	return &Service{
		pruner:   pruner,
		maxAge:   maxAge,
		interval: interval,
		now:      time.Now,
	}
}

// Start runs one prune immediately and then one per interval until Stop or ctx is done
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.RunOnce(ctx)

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.RunOnce(ctx)
			case <-ctx.Done():
				logger.Debug().Msg("mirror cleanup stopped")
				return
			}
		}
	}()

	logger.Info().
		Dur("interval", s.interval).
		Dur("max_age", s.maxAge).
		Msg("mirror cleanup started")
}

// Stop stops the cleanup loop and waits for it to exit
func (s *Service) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// RunOnce prunes rows older than maxAge and returns how many were removed
func (s *Service) RunOnce(ctx context.Context) int64 {
	cutoff := s.now().Add(-s.maxAge)
	removed, err := s.pruner.PruneSeenBefore(ctx, cutoff)
	if err != nil {
		logger.Warn().Err(err).Time("cutoff", cutoff).Msg("mirror cleanup failed")
		return 0
	}
	if removed > 0 {
		logger.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("pruned stale podcasts")
	}
	return removed
}
