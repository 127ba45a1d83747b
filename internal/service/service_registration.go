// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-register-form/internal/config"
	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/form"
	"github.com/MKhiriev/go-register-form/internal/logger"
)

type registrationService struct {
	cookie config.Cookie
	now    func() time.Time
	logger *logger.Logger
}

// NewRegistrationService returns a [RegistrationService] applying cfg to
// every form it builds.
func NewRegistrationService(cfg config.Cookie, logger *logger.Logger) RegistrationService {
	return &registrationService{
		cookie: cfg,
		now:    time.Now,
		logger: logger,
	}
}

func (s *registrationService) Form(ctx context.Context, ui form.UI, jar cookies.Jar) *form.Controller {
	return form.NewController(ui, jar,
		form.WithCookieName(s.cookie.Name),
		form.WithCookieTTL(s.cookie.TTLDays),
		form.WithClock(s.now),
		form.WithLogger(logger.FromContext(ctx)),
	)
}

func (s *registrationService) Remembered(ctx context.Context, jar cookies.Jar) (string, error) {
	name := s.cookie.Name
	if name == "" {
		name = form.DefaultCookieName
	}

	value, _, err := cookies.Get(ctx, jar, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error reading remembered username")
		return "", err
	}
	return value, nil
}

func (s *registrationService) CookiesDisabled() bool {
	return s.cookie.Disabled
}
