package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/repository"
	"github.com/sleeptight/club-backend/internal/venue"
	pkgcache "github.com/sleeptight/club-backend/pkg/cache"
	"github.com/sleeptight/club-backend/pkg/logger"
)

// ResetService purges all non-pinned posts and records the purge in
// the audit trail. Messages and the interaction ledger are never
// touched; comments on purged posts are left orphaned.
type ResetService interface {
	Purge(ctx context.Context, action string) (int64, error)
}

type resetService struct {
	posts repository.PostRepository
	cache pkgcache.Service
	clock venue.Clock
}

// NewResetService creates a new ResetService. cache may be nil.
func NewResetService(posts repository.PostRepository, cache pkgcache.Service, clock venue.Clock) ResetService {
	return &resetService{
		posts: posts,
		cache: cache,
		clock: clock,
	}
}

// Purge deletes every non-pinned post and appends exactly one audit
// entry with the given action, atomically.
func (s *resetService) Purge(ctx context.Context, action string) (int64, error) {
	entry := &domain.ModLog{
		ID:        uuid.NewString(),
		Action:    action,
		CreatedAt: s.clock.Now(),
	}

	purged, err := s.posts.PurgeWithLog(entry)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFeed(ctx); err != nil {
			logger.Get().Warn().Err(err).Msg("feed cache invalidation failed")
		}
	}

	logger.Get().Info().
		Str("action", action).
		Int64("purged", purged).
		Msg("reset complete")

	return purged, nil
}

// Scheduler fires the daily reset at the next close boundary (04:00
// local). After every firing it recomputes the next boundary from the
// current time, so restarts and long pauses never accumulate drift.
// The wait is injectable, so tests drive firings from a fake clock
// instead of sleeping on real timers.
type Scheduler struct {
	reset ResetService
	clock venue.Clock
	loc   *time.Location
	wait  func(until time.Time) <-chan time.Time
	stop  chan struct{}
	wg    sync.WaitGroup
}

// NewScheduler creates a daily reset scheduler
func NewScheduler(reset ResetService, clock venue.Clock, loc *time.Location) *Scheduler {
	return &Scheduler{
		reset: reset,
		clock: clock,
		loc:   loc,
		wait: func(until time.Time) <-chan time.Time {
			return time.After(time.Until(until))
		},
		stop: make(chan struct{}),
	}
}

// Start launches the scheduler goroutine
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			next := venue.NextCloseBoundary(s.clock.Now(), s.loc)

			select {
			case <-s.stop:
				return
			case <-s.wait(next):
				if _, err := s.reset.Purge(context.Background(), domain.ModActionDailyReset); err != nil {
					logger.Get().Error().Err(err).Msg("daily reset failed")
				}
			}
		}
	}()
	logger.Get().Info().
		Time("next_reset", venue.NextCloseBoundary(s.clock.Now(), s.loc)).
		Msg("daily reset scheduler started")
}

// Stop shuts the scheduler down and waits for the goroutine to exit
func (s *Scheduler) Stop() {
	close(s.stop)
	s.wg.Wait()
	logger.Get().Info().Msg("daily reset scheduler stopped")
}
