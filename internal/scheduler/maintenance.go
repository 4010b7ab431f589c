// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store/sqlite"
)

// Maintenance periodically checkpoints the SQLite WAL and refreshes the
// query planner statistics so FTS plans stay fresh as data accumulates.
type Maintenance struct {
	store    *sqlite.Store
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

func NewMaintenance(store *sqlite.Store, log logger.Logger, interval time.Duration) *Maintenance {
	return &Maintenance{
		store:    store,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic maintenance loop.
func (m *Maintenance) Start(ctx context.Context) error {
	// Run immediately on start
	if err := m.store.Optimize(ctx); err != nil {
		m.logger.Warn("initial database maintenance failed", logger.Error(err))
	}

	ticker := time.NewTicker(m.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.store.Optimize(ctx); err != nil {
					m.logger.Error("database maintenance failed", logger.Error(err))
				} else {
					m.logger.Debug("database maintenance completed")
				}
			case <-m.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the maintenance loop.
func (m *Maintenance) Stop() {
	close(m.stopCh)
}
