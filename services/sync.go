package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CacheConfig carries the staleness settings shared by the cached
// list services. Now is injectable for tests.
type CacheConfig struct {
	TTL time.Duration
	Now func() time.Time
}

// Refresher is anything the background scheduler can refresh.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshFunc adapts a plain function to Refresher.
type RefreshFunc func(ctx context.Context) error

func (f RefreshFunc) Refresh(ctx context.Context) error { return f(ctx) }

// SyncService keeps caches warm in long-running (daemon) mode by
// refreshing them on a fixed schedule. Interactive use does not need
// it; screens refresh through the staleness gate instead.
type SyncService struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func NewSyncService(logger *zap.Logger) *SyncService {
	return &SyncService{cron: cron.New(), logger: logger}
}

// Add schedules a named refresher at the given interval.
func (s *SyncService) Add(name string, interval time.Duration, r Refresher) error {
	spec := fmt.Sprintf("@every %s", interval)
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := r.Refresh(ctx); err != nil {
			s.logger.Warn("background refresh failed", zap.String("cache", name), zap.Error(err))
			return
		}
		s.logger.Debug("background refresh completed", zap.String("cache", name))
	})
	return err
}

func (s *SyncService) Start() {
	s.cron.Start()
	s.logger.Info("background sync scheduler started")
}

// Stop releases the cron timers. Must be called when the owning
// context is torn down.
func (s *SyncService) Stop() {
	s.cron.Stop()
}
