package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ewilliams-labs/deepcuts/internal/core/services"
)

// Handler manages the HTTP interface for the suggestion service.
type Handler struct {
	svc    *services.Orchestrator
	router *http.ServeMux
	logger *slog.Logger
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
		logger: logger.With("component", "rest"),
	}
	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Routes returns the router wrapped in request id, access log and metrics middleware.
func (h *Handler) Routes() http.Handler {
	return chain(h, requestID, accessLog(h.logger), instrument(defaultSkipPaths))
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)
	h.router.Handle("GET /metrics", promhttp.Handler())

	h.router.HandleFunc("POST /suggestions", h.Suggest)
	h.router.HandleFunc("GET /playlist", h.ResolvePlaylist)

	h.router.HandleFunc("POST /histories", h.CreateHistory)
	h.router.HandleFunc("GET /histories", h.ListHistories)
	h.router.HandleFunc("GET /histories/{id}", h.GetHistory)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
