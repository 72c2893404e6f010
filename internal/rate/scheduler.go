package rate

import (
	"context"
	"fmt"
	"fxconvert/internal/adapters"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPruneJobDuration = time.Hour
	defaultHistoryRetention = 30 * 24 * time.Hour
)

// Scheduler periodically removes conversions older than the retention period.
type Scheduler struct {
	repo             adapters.ConversionRepository
	retention        time.Duration
	pruneJobDuration time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if pruneErr := PruneHistory(jobCtx, execID, s.repo, time.Now().Add(-s.retention)); pruneErr != nil {
			logrus.Errorf("Prune history job %s failed: %v", execID, pruneErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.pruneJobDuration),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

// PruneHistory deletes conversions created before the cutoff.
func PruneHistory(ctx context.Context, execID string, repo adapters.ConversionRepository, cutoff time.Time) error {
	deleted, err := repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	if deleted == 0 {
		logrus.Debugf("Nothing to prune this time; execID: %s", execID)
		return nil
	}
	logrus.Infof("%d conversions older than %s were pruned; execID: %s", deleted, cutoff.Format(time.RFC3339), execID)
	return nil
}

func NewScheduler(repo adapters.ConversionRepository, retention, pruneJobDuration time.Duration) *Scheduler {
	if retention <= 0 {
		retention = defaultHistoryRetention
	}
	if pruneJobDuration <= 0 {
		pruneJobDuration = defaultPruneJobDuration
	}
	return &Scheduler{repo: repo, retention: retention, pruneJobDuration: pruneJobDuration}
}
