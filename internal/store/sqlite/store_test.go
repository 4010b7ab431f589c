package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/logger"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"), logger.New("error", false))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}

func testUser(t *testing.T, store *Store, email string) *domain.User {
	t.Helper()

	u := &domain.User{Name: "test", Email: email, PasswordHash: "x"}
	if err := store.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", email, err)
	}
	return u
}

func testBookmark(t *testing.T, store *Store, ownerID string, in domain.NewBookmarkInput) *domain.Bookmark {
	t.Helper()

	b, err := store.CreateBookmark(context.Background(), ownerID, in)
	if err != nil {
		t.Fatalf("CreateBookmark(%s) failed: %v", in.Title, err)
	}
	// created_at drives the newest-first orders; keep inserts distinct
	time.Sleep(2 * time.Millisecond)
	return b
}

func TestStorePing(t *testing.T) {
	store := testStore(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestStoreOptimize(t *testing.T) {
	store := testStore(t)
	if err := store.Optimize(context.Background()); err != nil {
		t.Errorf("Optimize failed: %v", err)
	}
}
