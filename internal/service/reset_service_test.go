package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sleeptight/club-backend/internal/domain"
)

// stepClock is a settable clock, so scheduler tests advance simulated
// time instead of sleeping
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *stepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func TestPurgeRecordsAuditEntry(t *testing.T) {
	posts := new(MockPostRepository)

	var entry *domain.ModLog
	posts.On("PurgeWithLog", mock.AnythingOfType("*domain.ModLog")).
		Run(func(args mock.Arguments) {
			entry = args.Get(0).(*domain.ModLog)
		}).Return(int64(7), nil)

	svc := NewResetService(posts, nil, fixedClock{closedInstant()})

	purged, err := svc.Purge(context.Background(), domain.ModActionDailyReset)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), purged)
	assert.Equal(t, domain.ModActionDailyReset, entry.Action)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, closedInstant(), entry.CreatedAt)
}

func TestPurgeManualAction(t *testing.T) {
	posts := new(MockPostRepository)

	var entry *domain.ModLog
	posts.On("PurgeWithLog", mock.AnythingOfType("*domain.ModLog")).
		Run(func(args mock.Arguments) {
			entry = args.Get(0).(*domain.ModLog)
		}).Return(int64(0), nil)

	svc := NewResetService(posts, nil, fixedClock{closedInstant()})

	purged, err := svc.Purge(context.Background(), domain.ModActionManualReset)
	assert.NoError(t, err)
	assert.Zero(t, purged, "purging an empty board still succeeds")
	assert.Equal(t, domain.ModActionManualReset, entry.Action)
}

func TestSchedulerFiresAndReschedules(t *testing.T) {
	posts := new(MockPostRepository)
	fired := make(chan *domain.ModLog, 1)
	posts.On("PurgeWithLog", mock.AnythingOfType("*domain.ModLog")).
		Run(func(args mock.Arguments) {
			fired <- args.Get(0).(*domain.ModLog)
		}).Return(int64(3), nil)

	clk := &stepClock{t: time.Date(2025, 6, 15, 10, 0, 0, 0, bangkok)}
	sched := NewScheduler(NewResetService(posts, nil, clk), clk, bangkok)

	boundaries := make(chan time.Time, 2)
	fire := make(chan time.Time)
	sched.wait = func(until time.Time) <-chan time.Time {
		boundaries <- until
		return fire
	}

	sched.Start()
	defer sched.Stop()

	first := <-boundaries
	assert.True(t, time.Date(2025, 6, 16, 4, 0, 0, 0, bangkok).Equal(first))

	// Reach the boundary and let the timer deliver
	clk.Set(first.Add(time.Second))
	fire <- first

	entry := <-fired
	assert.Equal(t, domain.ModActionDailyReset, entry.Action)

	// After firing the loop recomputes from the current time: the next
	// boundary is the following day's close, not the one just passed
	second := <-boundaries
	assert.True(t, time.Date(2025, 6, 17, 4, 0, 0, 0, bangkok).Equal(second))
}

func TestSchedulerStopWithoutFiring(t *testing.T) {
	posts := new(MockPostRepository)

	clk := &stepClock{t: time.Date(2025, 6, 15, 10, 0, 0, 0, bangkok)}
	sched := NewScheduler(NewResetService(posts, nil, clk), clk, bangkok)

	boundaries := make(chan time.Time, 1)
	sched.wait = func(until time.Time) <-chan time.Time {
		boundaries <- until
		return make(chan time.Time)
	}

	sched.Start()
	<-boundaries

	// Stop returns only once the goroutine has exited
	sched.Stop()
	posts.AssertNotCalled(t, "PurgeWithLog", mock.Anything)
}
