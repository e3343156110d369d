package handler

import (
	"github.com/MKhiriev/api-activity/internal/config"
	"github.com/MKhiriev/api-activity/internal/handler/http"
	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/service"
)

// Handlers groups the transport handlers of the server. HTTP is the only one.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, ErrNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, ErrNoHTTPAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
