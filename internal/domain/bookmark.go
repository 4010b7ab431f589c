package domain

import (
	"net/url"
	"strings"
	"time"
)

// Bookmark is a saved link owned by exactly one user.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, generated by the store.
	ID string `json:"id"`

	// OwnerID references the user that created the bookmark.
	// Every read and write is scoped to it.
	OwnerID string `json:"owner"`

	// ─────────────────────────────
	// Mutable fields
	// ─────────────────────────────

	// Title is the display name. Required.
	Title string `json:"title"`

	// URL is the saved link. Required, unique per (owner, url).
	URL string `json:"url"`

	// Note is free-form text. Optional.
	Note string `json:"note"`

	// Category groups bookmarks for exact-match filtering. Required.
	Category string `json:"category"`

	// Tags is an unordered set of labels. Defaults to empty.
	Tags []string `json:"tags"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is set by the store on insert.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is bumped by the store on any mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBookmarkInput carries the caller-supplied fields for create and update.
type NewBookmarkInput struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Note     string   `json:"note"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Validate checks the required fields and the URL shape.
// It returns an error wrapping ErrValidation on the first violation.
func (in *NewBookmarkInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return Invalid("title is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return Invalid("category is required")
	}
	if strings.TrimSpace(in.URL) == "" {
		return Invalid("url is required")
	}
	u, err := url.Parse(in.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Invalid("url must be a valid http(s) URL")
	}
	return nil
}

// Normalize trims whitespace and drops empty tags.
func (in *NewBookmarkInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	in.Note = strings.TrimSpace(in.Note)
	in.Category = strings.TrimSpace(in.Category)

	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	in.Tags = tags
}
