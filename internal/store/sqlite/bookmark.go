package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/linkvault/linkvault/internal/domain"
)

// timeLayout keeps timestamps lexicographically sortable in TEXT columns.
const timeLayout = time.RFC3339Nano

const bookmarkColumns = "id, owner_id, title, url, note, category, tags, created_at, updated_at"

type bookmarkRow struct {
	ID        string `db:"id"`
	OwnerID   string `db:"owner_id"`
	Title     string `db:"title"`
	URL       string `db:"url"`
	Note      string `db:"note"`
	Category  string `db:"category"`
	Tags      string `db:"tags"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func (r *bookmarkRow) toDomain() (domain.Bookmark, error) {
	createdAt, err := time.Parse(timeLayout, r.CreatedAt)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err := time.Parse(timeLayout, r.UpdatedAt)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	tags, err := decodeTags(r.Tags)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("parsing tags: %w", err)
	}

	return domain.Bookmark{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		URL:       r.URL,
		Note:      r.Note,
		Category:  r.Category,
		Tags:      tags,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Tags are stored as a JSON array so tag text survives any character,
// commas included. The FTS copy gets a plain joined form instead; the
// tokenizer only needs the words.
func encodeTags(tags []string) string {
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeTags(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func ftsTags(tags []string) string {
	return strings.Join(tags, " ")
}

// CreateBookmark inserts a new bookmark for ownerID. A second insert with
// the same (owner, url) returns domain.ErrDuplicate.
func (s *Store) CreateBookmark(ctx context.Context, ownerID string, in domain.NewBookmarkInput) (*domain.Bookmark, error) {
	now := time.Now().UTC()
	b := &domain.Bookmark{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     in.Title,
		URL:       in.URL,
		Note:      in.Note,
		Category:  in.Category,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO bookmarks (`+bookmarkColumns+`)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, b.OwnerID, b.Title, b.URL, b.Note, b.Category,
			encodeTags(b.Tags), now.Format(timeLayout), now.Format(timeLayout))
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("inserting bookmark: %w", err)
		}
		return s.syncFTS(ctx, tx, b)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// BookmarkByID returns the bookmark only if it belongs to ownerID.
// A foreign or missing id yields the same domain.ErrNotFound.
func (s *Store) BookmarkByID(ctx context.Context, ownerID, id string) (*domain.Bookmark, error) {
	var row bookmarkRow
	err := s.db.GetContext(ctx, &row, `
        SELECT `+bookmarkColumns+` FROM bookmarks
        WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting bookmark: %w", err)
	}

	b, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBookmark replaces the mutable fields of an owned bookmark.
// Owner, id and createdAt are immutable.
func (s *Store) UpdateBookmark(ctx context.Context, ownerID, id string, in domain.NewBookmarkInput) (*domain.Bookmark, error) {
	var updated *domain.Bookmark

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var row bookmarkRow
		err := tx.GetContext(ctx, &row, `
            SELECT `+bookmarkColumns+` FROM bookmarks
            WHERE id = ? AND owner_id = ?`, id, ownerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("getting bookmark: %w", err)
		}

		b, err := row.toDomain()
		if err != nil {
			return err
		}
		b.Title = in.Title
		b.URL = in.URL
		b.Note = in.Note
		b.Category = in.Category
		b.Tags = in.Tags
		if b.Tags == nil {
			b.Tags = []string{}
		}
		b.UpdatedAt = time.Now().UTC()

		_, err = tx.ExecContext(ctx, `
            UPDATE bookmarks
            SET title = ?, url = ?, note = ?, category = ?, tags = ?, updated_at = ?
            WHERE id = ? AND owner_id = ?`,
			b.Title, b.URL, b.Note, b.Category, encodeTags(b.Tags),
			b.UpdatedAt.Format(timeLayout), id, ownerID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("updating bookmark: %w", err)
		}

		updated = &b
		return s.syncFTS(ctx, tx, &b)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteBookmark removes an owned bookmark and its index entry.
func (s *Store) DeleteBookmark(ctx context.Context, ownerID, id string) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		// The FTS row must go first: it is addressed via the bookmark's rowid.
		_, err := tx.ExecContext(ctx, `
            DELETE FROM bookmarks_fts
            WHERE rowid = (SELECT rowid FROM bookmarks WHERE id = ? AND owner_id = ?)`,
			id, ownerID)
		if err != nil {
			return fmt.Errorf("deleting index entry: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
            DELETE FROM bookmarks WHERE id = ? AND owner_id = ?`, id, ownerID)
		if err != nil {
			return fmt.Errorf("deleting bookmark: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting bookmark: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// syncFTS writes the bookmark's searchable fields into the FTS5 table,
// keyed by the bookmark's rowid. Must run in the same transaction as the
// row mutation.
func (s *Store) syncFTS(ctx context.Context, tx *sqlx.Tx, b *domain.Bookmark) error {
	_, err := tx.ExecContext(ctx, `
        INSERT OR REPLACE INTO bookmarks_fts (rowid, title, tags, category, note)
        VALUES ((SELECT rowid FROM bookmarks WHERE id = ?), ?, ?, ?, ?)`,
		b.ID, b.Title, ftsTags(b.Tags), b.Category, b.Note)
	if err != nil {
		return fmt.Errorf("updating index entry: %w", err)
	}
	return nil
}
