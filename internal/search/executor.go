package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/linkvault/linkvault/internal/domain"
)

// Store is the slice of the bookmark store the executor needs.
type Store interface {
	// SearchBookmarks returns one page of bookmarks matching q, sorted
	// per q.Mode (relevance for ModeText, createdAt DESC otherwise).
	SearchBookmarks(ctx context.Context, q Query) ([]domain.Bookmark, error)

	// CountBookmarks returns the total number of bookmarks matching q,
	// ignoring pagination.
	CountBookmarks(ctx context.Context, q Query) (int, error)
}

// Result is one counted page of search results.
type Result struct {
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	Bookmarks  []domain.Bookmark `json:"bookmarks"`
}

// Executor runs queries built by Build against a Store.
type Executor struct {
	store Store
}

func NewExecutor(store Store) *Executor {
	return &Executor{store: store}
}

// Search fetches the requested page and the total count for the same
// filter. The two reads are independent and run concurrently; slight
// staleness between them is acceptable.
func (e *Executor) Search(ctx context.Context, q Query) (*Result, error) {
	var (
		items []domain.Bookmark
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = e.store.SearchBookmarks(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = e.store.CountBookmarks(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("executing search: %w", err)
	}

	if items == nil {
		items = []domain.Bookmark{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}

	return &Result{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
		Bookmarks:  items,
	}, nil
}
