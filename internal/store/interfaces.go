package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-register-form/internal/cookies"
)

// CookieStore persists cookies of the terminal client.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_cookie_mock.go -package=mock
type CookieStore interface {
	// Save inserts or replaces the cookie with the same name.
	Save(ctx context.Context, c cookies.Cookie) error
	// All returns the cookies not yet expired at now, oldest first.
	All(ctx context.Context, now time.Time) ([]cookies.Cookie, error)
	// Delete removes the cookie called name.
	Delete(ctx context.Context, name string) error
	// DeleteExpired removes every cookie expired at now and reports how many
	// were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
