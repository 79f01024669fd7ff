package services

import (
	"context"
	"log"
	"sync"
	"time"

	"taskforperks.com/taskforperks/internal/cache"
	"taskforperks.com/taskforperks/internal/notify"
	repository "taskforperks.com/taskforperks/internal/repositories"
)

// ExpiryService periodically flips stale pending claims to EXPIRED,
// freeing claim-pool capacity held by offers nobody acted on.
type ExpiryService struct {
	claims      *repository.ClaimRepository
	publisher   notify.Publisher
	invalidator cache.Invalidator
	interval    time.Duration
	stop        chan struct{}
	wg          sync.WaitGroup
}

func NewExpiryService(
	claims *repository.ClaimRepository,
	publisher notify.Publisher,
	invalidator cache.Invalidator,
	interval time.Duration,
) *ExpiryService {
	s := &ExpiryService{
		claims:      claims,
		publisher:   publisher,
		invalidator: invalidator,
		interval:    interval,
		stop:        make(chan struct{}),
	}

	s.wg.Add(1)
	go s.sweepLoop()

	return s
}

func (s *ExpiryService) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepOnce()
		case <-s.stop:
			return
		}
	}
}

func (s *ExpiryService) sweepOnce() {
	ctx := context.Background()

	taskIDs, err := s.claims.ExpirePending(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("claim expiry sweep failed: %v", err)
		return
	}

	for _, taskID := range taskIDs {
		event := notify.TaskEvent{TaskID: taskID, Event: notify.EventClaimsExpired}
		if err := s.publisher.PublishTaskChanged(ctx, event); err != nil {
			log.Printf("failed to publish expiry for task %s: %v", taskID, err)
		}
		if err := s.invalidator.InvalidateTaskDetail(ctx, taskID); err != nil {
			log.Printf("failed to invalidate task detail cache for %s: %v", taskID, err)
		}
	}
}

func (s *ExpiryService) Shutdown(ctx context.Context) {
	close(s.stop)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("claim expiry sweeper shut down cleanly")
	case <-ctx.Done():
		log.Println("claim expiry sweeper shutdown timed out")
	}
}
