package service

import (
	"fmt"

	"github.com/MKhiriev/go-register-form/internal/config"
	"github.com/MKhiriev/go-register-form/internal/logger"
)

type Services struct {
	AppInfoService      AppInfoService
	RegistrationService RegistrationService
}

// NewServices builds every service of the HTTP server.
func NewServices(app config.App, cookie config.Cookie, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(app, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AppInfoService:      appInfo,
		RegistrationService: NewRegistrationService(cookie, logger),
	}, nil
}
