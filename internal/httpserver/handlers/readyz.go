package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/linkvault/linkvault/internal/httpserver/deps"
)

type componentStatus struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type readyzResponse struct {
	Ready      bool                       `json:"ready"`
	Components map[string]componentStatus `json:"components"`
}

// Readyz reports whether the service can serve traffic: the database
// must answer; Redis being down only degrades caching, so it is
// reported but does not fail readiness.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		components := map[string]componentStatus{
			"database": checkDatabase(ctx, d),
			"redis":    checkRedis(ctx, d),
		}

		ready := components["database"].OK
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}

		respondJSON(w, status, readyzResponse{
			Ready:      ready,
			Components: components,
		})
	}
}

func checkDatabase(ctx context.Context, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{OK: false, Error: "store not initialized"}
	}
	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{OK: false, Error: "ping failed"}
	}
	return componentStatus{OK: true}
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{OK: false, Error: "client not initialized"}
	}
	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{OK: false, Error: "ping failed"}
	}
	return componentStatus{OK: true}
}
