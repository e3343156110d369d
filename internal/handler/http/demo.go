package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/utils"
)

const (
	arg1Param = "arg1"
	arg2Param = "arg2"
)

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.DemoService.Hello(r.Context()), http.StatusOK)
}

func (h *Handler) square(w http.ResponseWriter, r *http.Request) {
	area, err := h.services.DemoService.Square(r.Context(), chi.URLParam(r, "num"))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid square side")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, area, http.StatusOK)
}

func (h *Handler) echo(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	utils.WriteJSON(w, h.services.DemoService.Echo(r.Context(), queryArg(query, arg1Param), queryArg(query, arg2Param)), http.StatusOK)
}

// queryArg returns nil when the argument is absent and a pointer to the
// (possibly empty) first value otherwise.
func queryArg(query map[string][]string, name string) *string {
	values, ok := query[name]
	if !ok || len(values) == 0 {
		return nil
	}

	value := values[0]
	return &value
}
