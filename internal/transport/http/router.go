package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bloodnet/internal/platform/metrics"
	"bloodnet/internal/platform/middleware"
	dErrors "bloodnet/pkg/domain-errors"
	"bloodnet/pkg/platform/httputil"
	"bloodnet/pkg/platform/middleware/metadata"
	"bloodnet/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by every feature handler.
type Registrar interface {
	Register(r chi.Router)
}

// Dependencies are the collaborators the router mounts.
type Dependencies struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// Gatherer backs /metrics; nil uses the default registry.
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
	// Clock overrides the request time source; nil uses time.Now.
	Clock func() time.Time
	// RateLimit, when set, guards every feature route.
	RateLimit func(http.Handler) http.Handler
	Handlers  []Registrar
}

// NewRouter wires the shared middleware chain, the operational endpoints and
// every feature handler. Handlers delegate to their services without
// embedding business logic so transport concerns remain isolated.
func NewRouter(d Dependencies) http.Handler {
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}

	r := chi.NewRouter()
	r.Use(middleware.DecodedPath)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Logger, d.Metrics))
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.MiddlewareWithClock(clock))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.LatencyMiddleware(d.Metrics))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(api chi.Router) {
		if d.RequestTimeout > 0 {
			api.Use(middleware.Timeout(d.RequestTimeout))
		}
		if d.RateLimit != nil {
			api.Use(d.RateLimit)
		}
		api.Use(middleware.ContentTypeJSON)
		for _, h := range d.Handlers {
			h.Register(api)
		}
	})
	return r
}
