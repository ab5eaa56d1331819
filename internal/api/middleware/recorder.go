package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/urbangis/server/internal/domain/requestlog"
)

// maxRecordedBody caps how much of a request body is captured for the audit
// log. Larger bodies are logged without a body field.
const maxRecordedBody = 8 << 10

// AuditRecorder writes one request-log entry per request to the audit store.
// Documentation routes, the favicon, and operational endpoints are skipped.
// The write is fire-and-forget: the recorder spawns it after the response is
// complete and never lets a failure surface.
func AuditRecorder(recorder *requestlog.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if recorder == nil || skipAudit(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rw := &responseWriter{ResponseWriter: w}
			body := captureBody(r)

			// RequireAuth runs deeper in the chain; the capture slot lets it
			// hand the identity back out to this middleware.
			capture := &identityCapture{}
			ctx := context.WithValue(r.Context(), captureKey, capture)

			next.ServeHTTP(rw, r.WithContext(ctx))

			entry := requestlog.Entry{
				Method:     r.Method,
				Path:       r.URL.RequestURI(),
				StatusCode: rw.status,
				DurationMs: time.Since(start).Milliseconds(),
				IP:         clientIP(r),
				UserAgent:  r.UserAgent(),
				Query:      queryValues(r),
				Body:       requestlog.RedactBody(body),
			}
			if entry.StatusCode == 0 {
				entry.StatusCode = http.StatusOK
			}
			if capture.identity != nil {
				entry.User = &requestlog.Actor{
					ID:    capture.identity.ID,
					Role:  capture.identity.Role,
					Email: capture.identity.Email,
				}
			}

			recorder.Record(entry)
		})
	}
}

func skipAudit(path string) bool {
	return strings.HasPrefix(path, "/docs") ||
		strings.HasPrefix(path, "/swagger") ||
		path == "/favicon.ico" ||
		path == "/metrics" ||
		path == "/healthz"
}

// captureBody reads a small JSON request body and puts it back for the
// handler. Anything non-JSON or oversized is not logged; the handler always
// sees the full body, including any unread tail beyond the capture cap.
func captureBody(r *http.Request) map[string]any {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRecordedBody+1))
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), r.Body))
	if err != nil || len(raw) > maxRecordedBody {
		return nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}

// queryValues copies the query string for the log entry. Single-valued
// parameters log as strings, repeated ones as the full value list.
func queryValues(r *http.Request) map[string]any {
	values := r.URL.Query()
	if len(values) == 0 {
		return nil
	}
	query := make(map[string]any, len(values))
	for key, list := range values {
		if len(list) == 1 {
			query[key] = list[0]
			continue
		}
		query[key] = list
	}
	return query
}

// clientIP prefers proxy headers over RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if comma := strings.IndexByte(xff, ','); comma >= 0 {
			return strings.TrimSpace(xff[:comma])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
