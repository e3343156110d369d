package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/service"
	"github.com/MKhiriev/api-activity/internal/store"
	"github.com/MKhiriev/api-activity/internal/utils"
	"github.com/MKhiriev/api-activity/internal/validators"
	"github.com/MKhiriev/api-activity/models"
)

// errorStatusMap is scanned in order; the first matching target wins.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{service.ErrUsernameTaken, http.StatusConflict},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{ErrNotFound, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the client visible body for err. Internal failures
// are reported by their status text only.
func errorResponse(err error, status int) models.ErrorResponse {
	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return models.ErrorResponse{Error: validationErr.Err.Error(), Field: validationErr.Field}
	case status == http.StatusUnauthorized:
		return models.ErrorResponse{Error: service.ErrAuthenticationFailed.Error()}
	case status == http.StatusConflict:
		return models.ErrorResponse{Error: service.ErrUsernameTaken.Error()}
	case status == http.StatusBadRequest:
		return models.ErrorResponse{Error: ErrInvalidRequestBody.Error()}
	default:
		return models.ErrorResponse{Error: http.StatusText(status)}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	}

	utils.WriteJSON(w, errorResponse(err, status), status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrNotFound)
}
