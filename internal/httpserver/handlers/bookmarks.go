package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/httpserver/mw"
	"github.com/linkvault/linkvault/internal/logger"
)

// CreateBookmark inserts a new bookmark for the authenticated user.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := mw.OwnerID(ctx)

		var in domain.NewBookmarkInput
		if err := decodeJSON(r, &in); err != nil {
			respondError(w, d.Logger, err)
			return
		}
		in.Normalize()
		if err := in.Validate(); err != nil {
			respondError(w, d.Logger, err)
			return
		}

		b, err := d.Store.CreateBookmark(ctx, owner, in)
		if err != nil {
			respondError(w, d.Logger, err)
			return
		}

		flushSearchCache(ctx, d, owner)
		respondJSON(w, http.StatusCreated, b)
	}
}

// GetBookmark returns one owned bookmark. A foreign or unknown id gets
// the same 404.
func GetBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		b, err := d.Store.BookmarkByID(ctx, mw.OwnerID(ctx), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, b)
	}
}

// UpdateBookmark replaces the mutable fields of an owned bookmark.
func UpdateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := mw.OwnerID(ctx)

		var in domain.NewBookmarkInput
		if err := decodeJSON(r, &in); err != nil {
			respondError(w, d.Logger, err)
			return
		}
		in.Normalize()
		if err := in.Validate(); err != nil {
			respondError(w, d.Logger, err)
			return
		}

		b, err := d.Store.UpdateBookmark(ctx, owner, chi.URLParam(r, "id"), in)
		if err != nil {
			respondError(w, d.Logger, err)
			return
		}

		flushSearchCache(ctx, d, owner)
		respondJSON(w, http.StatusOK, b)
	}
}

// DeleteBookmark removes an owned bookmark.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := mw.OwnerID(ctx)

		if err := d.Store.DeleteBookmark(ctx, owner, chi.URLParam(r, "id")); err != nil {
			respondError(w, d.Logger, err)
			return
		}

		flushSearchCache(ctx, d, owner)
		respondJSON(w, http.StatusOK, map[string]string{"message": "bookmark deleted"})
	}
}

// flushSearchCache drops the owner's cached search pages after a write.
// Best effort: a cache failure never fails the request.
func flushSearchCache(ctx context.Context, d deps.Deps, owner string) {
	if d.Cache == nil {
		return
	}
	if err := d.Cache.FlushOwner(ctx, owner); err != nil {
		d.Logger.Warn("failed to flush search cache",
			logger.String("owner", owner),
			logger.Error(err))
	}
}
