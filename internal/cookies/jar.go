// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cookies

import (
	"context"
	"time"
)

//go:generate mockgen -source=jar.go -destination=../mock/cookies_jar_mock.go -package=mock

// Jar is the cookie store port.
type Jar interface {
	// Enabled reports whether the host environment accepts cookies.
	Enabled() bool

	// Read returns all live cookies joined with "; ".
	Read(ctx context.Context) (string, error)

	// Write stores one "name=value; expires=...; path=/" line. A line whose
	// expiry is already in the past removes the cookie.
	Write(ctx context.Context, line string) error
}

// Cookie is a decoded set-cookie line.
type Cookie struct {
	Name    string
	Value   string
	Path    string
	Expires time.Time
}

// Expired reports whether the cookie has a non-zero expiry at or before now.
func (c Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}
