package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/pushfan/pkg/dispatch"
	"github.com/dmitrymomot/pushfan/pkg/httpserver"
	"github.com/dmitrymomot/pushfan/pkg/logger"
	"github.com/dmitrymomot/pushfan/pkg/requestid"
	"github.com/dmitrymomot/pushfan/pkg/subscription"
	"github.com/dmitrymomot/pushfan/pkg/userstore"
	"github.com/dmitrymomot/pushfan/pkg/vapid"
)

// Registry is the part of *subscription.Registry the API needs.
type Registry interface {
	Add(c subscription.Candidate) error
	Len() int
	Capacity() int
}

// Dispatcher runs a dispatch; *dispatch.Engine implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, payload []byte, creds vapid.Credentials) (dispatch.Report, error)
}

// RouterOptions wires the router's collaborators. Registry, Store, Dispatcher
// and Credentials are required.
type RouterOptions struct {
	Registry    Registry
	Store       userstore.Store
	Dispatcher  Dispatcher
	Credentials vapid.Source

	// TriggerKey, when set, must be sent in the X-Trigger-Key header to
	// trigger a dispatch.
	TriggerKey string

	// Readiness checks run by /health/ready.
	Readiness []httpserver.Check

	Logger *slog.Logger
}

// Router builds the HTTP handler.
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("api"))

	h := &handlers{
		registry:    opts.Registry,
		store:       opts.Store,
		dispatcher:  opts.Dispatcher,
		credentials: opts.Credentials,
		logger:      log,
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(accessLog(log))
	r.Use(middleware.Recoverer)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "not_found", "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil)
	})

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, opts.Readiness...))

	r.Route("/api", func(api chi.Router) {
		api.Post("/subscribers", h.register)
		api.Get("/subscribers/count", h.count)
		api.With(triggerKey(opts.TriggerKey)).Post("/notifications/trigger", h.trigger)
	})

	return r
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
