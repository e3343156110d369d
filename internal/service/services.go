package service

import (
	"fmt"

	"github.com/MKhiriev/api-activity/internal/config"
	"github.com/MKhiriev/api-activity/internal/crypto"
	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/store"
)

type Services struct {
	AuthService    AuthService
	DemoService    DemoService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost, cfg.App.PasswordHashKey)

	authService := NewAuthValidationService(crypto.PasswordLimit(cfg.App.PasswordHashKey)).
		Wrap(NewAuthService(storages.CredentialRepository, hasher, logger))

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		DemoService:    NewDemoService(),
		AppInfoService: appInfoService,
	}, nil
}
