package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/urbangis/server/internal/api/respond"
)

// Pinger is the readiness probe dependency, satisfied by the Postgres
// repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports application health to clients: 200 {"ok":true}.
func Health() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
}

// Healthz is the liveness probe: the process is up and serving.
func Healthz() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// Readyz is the readiness probe: 200 once the database answers a ping,
// 503 otherwise.
func Readyz(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			respond.Error(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
}
