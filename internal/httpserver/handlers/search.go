package handlers

import (
	"net/http"
	"strconv"

	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/httpserver/mw"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/search"
	redisstore "github.com/linkvault/linkvault/internal/store/redis"
)

// SearchBookmarks runs the core search: free-text term, optional
// category filter, offset pagination. With no term it degrades to a
// newest-first listing, which also backs GET /api/bookmarks.
func SearchBookmarks(d deps.Deps) http.HandlerFunc {
	exec := search.NewExecutor(d.Store)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		params := r.URL.Query()

		q := search.Build(
			mw.OwnerID(ctx),
			params.Get("q"),
			params.Get("category"),
			atoiOrZero(params.Get("page")),
			atoiOrZero(params.Get("limit")),
		)

		cacheTTL := d.SearchCacheTTL
		if cacheTTL <= 0 {
			cacheTTL = redisstore.DefaultSearchTTL
		}

		// Cache failures degrade to a store query, never to an error.
		if d.Cache != nil {
			cached, err := d.Cache.GetSearch(ctx, q)
			if err != nil {
				d.Logger.Warn("search cache read failed", logger.Error(err))
			} else if cached != nil {
				d.Logger.Debug("search cache hit",
					logger.String("mode", q.Mode.String()))
				respondJSON(w, http.StatusOK, cached)
				return
			}
		}

		result, err := exec.Search(ctx, q)
		if err != nil {
			respondError(w, d.Logger, err)
			return
		}

		d.Logger.Debug("search executed",
			logger.String("mode", q.Mode.String()),
			logger.Int("total", result.Total),
			logger.Int("page", result.Page))

		if d.Cache != nil {
			if err := d.Cache.PutSearch(ctx, q, result, cacheTTL); err != nil {
				d.Logger.Warn("search cache write failed", logger.Error(err))
			}
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// atoiOrZero parses n, returning 0 for anything non-numeric. The query
// builder coerces 0 to the default.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
