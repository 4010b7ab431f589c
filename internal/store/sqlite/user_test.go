package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/linkvault/linkvault/internal/domain"
)

func TestCreateUser(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	u := &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.ID == "" {
		t.Error("expected generated id")
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	dup := &domain.User{Name: "Other", Email: "alice@example.com", PasswordHash: "hash2"}
	if err := store.CreateUser(ctx, dup); !errors.Is(err, domain.ErrDuplicate) {
		t.Errorf("duplicate email error = %v, want ErrDuplicate", err)
	}
}

func TestUserLookup(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	created := testUser(t, store, "alice@example.com")

	byEmail, err := store.UserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("UserByEmail failed: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("UserByEmail id = %q, want %q", byEmail.ID, created.ID)
	}

	byID, err := store.UserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("UserByID failed: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("UserByID email = %q", byID.Email)
	}

	if _, err := store.UserByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing user error = %v, want ErrNotFound", err)
	}
}
