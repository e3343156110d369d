package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used by the Compress middleware.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.hello)
		r.Get("/square/{num:[0-9]+}", h.square)
		r.Get("/echo", h.echo)
		r.Put("/register", h.register)
		r.Get("/version", h.getServerVersion)
	})

	// routes behind the authentication gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/sensitive", h.sensitive)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
