package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/search"
)

// bm25 weights per FTS5 column: title, tags, category, note.
// Smaller bm25() means a better match, so ORDER BY bm25 ascending
// yields descending relevance.
const bm25Weights = "5.0, 2.0, 2.0, 1.0"

// SearchBookmarks returns one page of bookmarks matching q, sorted per
// q.Mode. Implements search.Store.
func (s *Store) SearchBookmarks(ctx context.Context, q search.Query) ([]domain.Bookmark, error) {
	stmt, args := searchSQL(q, false)
	args = append(args, q.Limit, q.Offset())

	var rows []bookmarkRow
	if err := s.db.SelectContext(ctx, &rows, stmt, args...); err != nil {
		return nil, fmt.Errorf("searching bookmarks: %w", err)
	}

	out := make([]domain.Bookmark, 0, len(rows))
	for i := range rows {
		b, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// CountBookmarks returns the total number of bookmarks matching q,
// ignoring pagination. Implements search.Store.
func (s *Store) CountBookmarks(ctx context.Context, q search.Query) (int, error) {
	stmt, args := searchSQL(q, true)

	var count int
	if err := s.db.GetContext(ctx, &count, stmt, args...); err != nil {
		return 0, fmt.Errorf("counting bookmarks: %w", err)
	}
	return count, nil
}

// searchSQL renders q into SQL. The owner equality predicate is present
// in every branch; there is no way to build a statement without it.
// Callers append LIMIT/OFFSET args for the non-count form.
func searchSQL(q search.Query, count bool) (string, []any) {
	selectCols := "SELECT b." + strings.ReplaceAll(bookmarkColumns, ", ", ", b.") + " FROM bookmarks b"
	if count {
		selectCols = "SELECT COUNT(*) FROM bookmarks b"
	}

	where := "b.owner_id = ?"
	args := []any{}
	if q.Mode == search.ModeText {
		// MATCH binds first: the FTS join precedes the WHERE in the statement.
		args = append(args, ftsMatch(q.Term))
	}
	args = append(args, q.OwnerID)
	if q.Category != "" {
		where += " AND b.category = ?"
		args = append(args, q.Category)
	}

	switch q.Mode {
	case search.ModeText:
		stmt := selectCols + `
            JOIN bookmarks_fts ON bookmarks_fts.rowid = b.rowid
            WHERE bookmarks_fts MATCH ? AND ` + where
		if !count {
			stmt += `
            ORDER BY bm25(bookmarks_fts, ` + bm25Weights + `), b.created_at DESC
            LIMIT ? OFFSET ?`
		}
		return stmt, args

	case search.ModeSubstring:
		pattern := "%" + escapeLike(q.Term) + "%"
		where += ` AND (b.title LIKE ? ESCAPE '\' OR b.tags LIKE ? ESCAPE '\')`
		args = append(args, pattern, pattern)
	}

	stmt := selectCols + " WHERE " + where
	if !count {
		stmt += `
            ORDER BY b.created_at DESC, b.rowid DESC
            LIMIT ? OFFSET ?`
	}
	return stmt, args
}

// ftsMatch renders the term as an FTS5 match expression: each token is
// quoted (so user input cannot inject FTS5 syntax) and tokens are OR-ed,
// matching any of them.
func ftsMatch(term string) string {
	fields := strings.Fields(term)
	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		quoted = append(quoted, `"`+strings.ReplaceAll(f, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, " OR ")
}

// escapeLike neutralizes LIKE wildcards in the user's term.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
