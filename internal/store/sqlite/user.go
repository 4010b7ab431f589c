package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linkvault/linkvault/internal/domain"
)

const userColumns = "id, name, email, password_hash, avatar_url, avatar_id, created_at, updated_at"

type userRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AvatarURL    string `db:"avatar_url"`
	AvatarID     string `db:"avatar_id"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
}

func (r *userRow) toDomain() (domain.User, error) {
	createdAt, err := time.Parse(timeLayout, r.CreatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err := time.Parse(timeLayout, r.UpdatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("parsing updated_at: %w", err)
	}

	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		AvatarURL:    r.AvatarURL,
		AvatarID:     r.AvatarID,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// CreateUser inserts a new account. A second account with the same email
// returns domain.ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO users (`+userColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.AvatarURL, u.AvatarID,
		now.Format(timeLayout), now.Format(timeLayout))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// UserByEmail fetches an account by its (lowercased) email.
func (s *Store) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getUser(ctx, "email", email)
}

// UserByID fetches an account by id.
func (s *Store) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *Store) getUser(ctx context.Context, column, value string) (*domain.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, `
        SELECT `+userColumns+` FROM users WHERE `+column+` = ?`, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	u, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &u, nil
}
