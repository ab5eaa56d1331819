package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/urbangis/server/internal/api/handlers"
	"github.com/urbangis/server/internal/api/middleware"
	"github.com/urbangis/server/internal/auth"
	"github.com/urbangis/server/internal/config"
	"github.com/urbangis/server/internal/domain/events"
	"github.com/urbangis/server/internal/domain/requestlog"
	"github.com/urbangis/server/internal/domain/users"
	"github.com/urbangis/server/internal/metrics"
	"github.com/urbangis/server/web"
)

// Deps carries the wired dependencies into the router. Recorder and Logs are
// nil when the audit store is not configured; the router degrades to serving
// without request auditing.
type Deps struct {
	Config   config.Config
	Logger   zerolog.Logger
	Users    *users.Service
	Events   *events.Service
	Logs     *requestlog.Service
	Recorder *requestlog.Recorder
	Tokens   *auth.JWTManager
	Health   handlers.Pinger
}

func NewRouter(deps Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(deps.Users)
	eventsHandler := handlers.NewEventsHandler(deps.Events)
	logsHandler := handlers.NewLogsHandler(deps.Logs)

	requireAuth := middleware.RequireAuth(deps.Tokens)
	organizerOrAdmin := middleware.RequireRole(auth.RoleAdmin, auth.RoleOrganizer)
	adminOnly := middleware.RequireRole(auth.RoleAdmin)

	mux := http.NewServeMux()
	mux.Handle("/", web.Handler())
	mux.Handle("/health", methodMux(map[string]http.Handler{
		http.MethodGet: handlers.Health(),
	}))
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(deps.Health))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	mux.Handle("/auth/register", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Register),
	}))
	mux.Handle("/auth/login", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Login),
	}))

	mux.Handle("/events", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
		http.MethodPost: requireAuth(organizerOrAdmin(http.HandlerFunc(eventsHandler.Create))),
	}))
	mux.Handle("/events/{id}", methodMux(map[string]http.Handler{
		http.MethodPatch:  requireAuth(http.HandlerFunc(eventsHandler.Update)),
		http.MethodDelete: requireAuth(http.HandlerFunc(eventsHandler.Delete)),
	}))

	mux.Handle("/logs", methodMux(map[string]http.Handler{
		http.MethodGet: requireAuth(adminOnly(http.HandlerFunc(logsHandler.List))),
	}))

	return chain(mux,
		metrics.HTTPMiddleware,
		middleware.CorrelationID(deps.Logger),
		middleware.RequestLogging(deps.Logger),
		middleware.AuditRecorder(deps.Recorder),
		middleware.CORS(deps.Config.CORS, deps.Logger),
		middleware.SecurityHeaders(deps.Config.Environment == "production"),
		middleware.RequestSize(middleware.DefaultMaxBodySize),
	)
}

// chain wraps handler so the first middleware listed is the outermost.
func chain(handler http.Handler, wrappers ...func(http.Handler) http.Handler) http.Handler {
	for i := len(wrappers) - 1; i >= 0; i-- {
		handler = wrappers[i](handler)
	}
	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
