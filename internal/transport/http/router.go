package httptransport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"levelzero/internal/platform/metrics"
	"levelzero/internal/validation"
	"levelzero/internal/validation/checkers/handlelifetime"
	"levelzero/internal/validation/checkers/leak"
	"levelzero/pkg/platform/httputil"
)

// Handler serves read-only diagnostics about the installed checkers.
type Handler struct {
	registry *validation.Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewHandler(registry *validation.Registry, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
	}
}

// NewRouter wires the diagnostics endpoints. Metrics are served from
// gatherer.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.count)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/v1/checkers", h.handleCheckers)
	r.Get("/v1/leaks", h.handleLeaks)
	r.Get("/v1/handles", h.handleHandles)
	return r
}

func (h *Handler) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.IncrementRequests(route, strconv.Itoa(ww.Status()))
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type checkerResponse struct {
	Name     string              `json:"name"`
	Families []validation.Family `json:"families"`
}

func (h *Handler) handleCheckers(w http.ResponseWriter, _ *http.Request) {
	checkers := h.registry.Checkers()
	resp := make([]checkerResponse, 0, len(checkers))
	for _, c := range checkers {
		resp = append(resp, checkerResponse{Name: c.Name(), Families: validation.Families(c)})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleLeaks(w http.ResponseWriter, r *http.Request) {
	c, ok := find[*leak.Checker](h.registry)
	if !ok {
		h.logger.DebugContext(r.Context(), "leak report requested without leak checker",
			"request_id", middleware.GetReqID(r.Context()),
		)
		httputil.WriteError(w, http.StatusNotFound, "not_found", "leak checker is not enabled")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c.Report())
}

func (h *Handler) handleHandles(w http.ResponseWriter, _ *http.Request) {
	c, ok := find[*handlelifetime.Checker](h.registry)
	if !ok {
		httputil.WriteError(w, http.StatusNotFound, "not_found", "handle lifetime checker is not enabled")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c.Live())
}

func find[T validation.Checker](registry *validation.Registry) (T, bool) {
	for _, c := range registry.Checkers() {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
