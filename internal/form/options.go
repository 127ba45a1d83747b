package form

import (
	"time"

	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/validators"
)

// Defaults for the remembered username cookie.
const (
	DefaultCookieName = "username"
	DefaultCookieDays = 7
)

// Acknowledgment is shown when a submission is accepted.
const Acknowledgment = "registration completed successfully (simulated)"

// Option configures a Controller.
type Option func(*Controller)

// WithCookieName overrides the remembered username cookie name.
func WithCookieName(name string) Option {
	return func(c *Controller) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithCookieTTL overrides the cookie lifetime in days.
func WithCookieTTL(days int) Option {
	return func(c *Controller) {
		if days > 0 {
			c.cookieDays = days
		}
	}
}

// WithClock replaces time.Now when computing cookie expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger attaches a logger. Without it the controller is silent.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithValidator replaces the field rules.
func WithValidator(v validators.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}
