// Package search holds the bookmark search core: a pure query builder
// that picks a search mode from the raw request, and an executor that
// runs the resulting query against the store as a counted page.
package search

import (
	"strings"
	"unicode/utf8"
)

// Mode selects how the search term is matched against the store.
type Mode int

const (
	// ModeDefault lists the owner's bookmarks newest-first, no term.
	ModeDefault Mode = iota

	// ModeText runs the term through the weighted full-text index and
	// sorts by descending relevance.
	ModeText

	// ModeSubstring matches the term as a case-insensitive substring of
	// the title or any tag, sorted newest-first. Full-text indexes drop
	// tokens shorter than three characters, so 1-2 character terms go
	// through this path instead.
	ModeSubstring
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeSubstring:
		return "substring"
	default:
		return "default"
	}
}

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// textSearchMinLen is the shortest term the full-text index handles.
	textSearchMinLen = 3
)

// Query is the typed filter + sort specification consumed by the
// executor. OwnerID is always set; Category and Term are optional.
// Invalid mode/term combinations cannot be built through Build.
type Query struct {
	OwnerID  string
	Category string // empty = no category filter
	Term     string // trimmed; empty only in ModeDefault
	Mode     Mode
	Page     int
	Limit    int
}

// Offset is the number of records to skip for the current page.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ModeFor selects the search mode from a trimmed term.
func ModeFor(term string) Mode {
	switch n := utf8.RuneCountInString(term); {
	case n == 0:
		return ModeDefault
	case n < textSearchMinLen:
		return ModeSubstring
	default:
		return ModeText
	}
}

// Build turns a raw search request into a Query. It never fails:
// non-positive page or limit are coerced to the defaults, the term is
// trimmed, and the mode is derived from the trimmed term.
func Build(ownerID, term, category string, page, limit int) Query {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	term = strings.TrimSpace(term)

	return Query{
		OwnerID:  ownerID,
		Category: strings.TrimSpace(category),
		Term:     term,
		Mode:     ModeFor(term),
		Page:     page,
		Limit:    limit,
	}
}
