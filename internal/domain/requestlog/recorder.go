package requestlog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/urbangis/server/internal/metrics"
)

const insertTimeout = 5 * time.Second

// Recorder persists entries asynchronously. The response path never waits on
// it, and a failed write is logged at debug and dropped. A nil Recorder is a
// valid no-op, used when MONGO_URL is not configured.
type Recorder struct {
	repo   Repository
	logger zerolog.Logger
}

func NewRecorder(repo Repository, logger zerolog.Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: logger.With().Str("component", "requestlog").Logger(),
	}
}

// Record fires the insert on its own goroutine with a fresh context, so a
// cancelled request context cannot abort the write.
func (r *Recorder) Record(entry Entry) {
	if r == nil || r.repo == nil {
		metrics.AuditWritesTotal.WithLabelValues("dropped").Inc()
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		defer cancel()

		if err := r.repo.Insert(ctx, entry); err != nil {
			metrics.AuditWritesTotal.WithLabelValues("error").Inc()
			r.logger.Debug().Err(err).Str("path", entry.Path).Msg("request log write failed")
			return
		}
		metrics.AuditWritesTotal.WithLabelValues("ok").Inc()
	}()
}
