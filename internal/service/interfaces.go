package service

import (
	"context"

	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/form"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RegistrationService builds registration forms with the configured cookie
// policy.
type RegistrationService interface {
	// Form returns a controller bound to ui and jar.
	Form(ctx context.Context, ui form.UI, jar cookies.Jar) *form.Controller
	// Remembered returns the username stored in jar, or "" when there is none.
	Remembered(ctx context.Context, jar cookies.Jar) (string, error)
	// CookiesDisabled reports whether jars must behave as if the host had
	// cookies turned off.
	CookiesDisabled() bool
}
