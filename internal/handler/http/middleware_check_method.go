// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/api-activity/internal/utils"
	"github.com/MKhiriev/api-activity/models"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed whenever a path matches a
// registered route but the method is not handled. This handler answers
// 404 Not Found instead, so an unsupported method looks exactly like an
// unknown route.
//
// If the requested method IS registered for a route whose pattern equals
// the raw request path, the request is forwarded to the router's normal
// ServeHTTP pipeline. Parameterised patterns are never expanded here.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteJSON(w, models.ErrorResponse{Error: ErrNotFound.Error()}, http.StatusNotFound)
	}
}
