package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store/sqlite"
)

func TestMaintenance_StartStop(t *testing.T) {
	log := logger.New("error", false)
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer store.Close()

	m := NewMaintenance(store, log, time.Hour)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Startup runs one pass immediately; give it a moment
	time.Sleep(50 * time.Millisecond)

	m.Stop()
}

func TestMaintenance_StopViaContext(t *testing.T) {
	log := logger.New("error", false)
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	m := NewMaintenance(store, log, time.Hour)

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()
	time.Sleep(50 * time.Millisecond)

	// Stop after context cancellation must not panic or hang
	m.Stop()
}
