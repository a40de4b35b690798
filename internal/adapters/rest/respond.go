package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/services"
)

// Error codes returned in the JSON error body.
const (
	codeInvalidRequest  = "INVALID_REQUEST"
	codeNotFound        = "NOT_FOUND"
	codeUpstreamAuth    = "UPSTREAM_AUTH"
	codeUpstreamFetch   = "UPSTREAM_FETCH"
	codeGenerative      = "GENERATIVE_SERVICE"
	codeStorageDisabled = "STORAGE_UNAVAILABLE"
	codeInternal        = "INTERNAL"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// writeServiceError maps a service error onto a status code. Upstream
// failures keep the upstream's raw text so callers can diagnose them.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	} else {
		h.logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, codeInvalidRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, domain.ErrUpstreamAuth):
		return http.StatusBadGateway, codeUpstreamAuth
	case errors.Is(err, domain.ErrUpstreamFetch):
		return http.StatusBadGateway, codeUpstreamFetch
	case errors.Is(err, domain.ErrGenerativeService):
		return http.StatusBadGateway, codeGenerative
	case errors.Is(err, services.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, codeStorageDisabled
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

func isJSONContentType(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/json"
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, codeInvalidRequest, "Content-Type must be application/json")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid request body")
		return false
	}
	return true
}
