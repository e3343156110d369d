package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/utils"
	"github.com/MKhiriev/api-activity/models"
)

// Request headers carrying the per-request credentials.
const (
	usernameHeader = "username"
	passwordHeader = "password"
)

// auth is an HTTP middleware that authenticates every request on its own.
//
// It reads the "username" and "password" request headers and checks them via
// [service.AuthService.Authenticate]. On success the authenticated username is
// stored in the request context under [utils.UsernameCtxKey] and the next
// handler runs unchanged. No session or token is issued.
//
// Unknown users and wrong passwords are rejected with the same 401 body.
// A storage failure is reported as 503 and never as 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		credentials := models.Credentials{
			Username: r.Header.Get(usernameHeader),
			Password: r.Header.Get(passwordHeader),
		}

		ctx := r.Context()
		username, err := h.services.AuthService.Authenticate(ctx, credentials)
		if err != nil {
			log.Err(err).Object("credentials", credentials).Msg("request rejected by authentication gate")
			h.writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
