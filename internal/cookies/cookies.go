// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cookies

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Day is the length of one cookie day: 86 400 000 ms.
const Day = 24 * time.Hour

// RootPath is the path every cookie written by Set is scoped to.
const RootPath = "/"

// Result describes what Set did.
type Result struct {
	// Written is true when the line reached the jar.
	Written bool
	// Notice is non-empty when cookies are disabled; it is meant for the
	// cookie message slot of the UI.
	Notice  string
	Expires time.Time
}

// Set stores name=value in jar for the given number of days, counted from
// now. When the jar is disabled nothing is stored and the returned Result
// carries the user-facing notice instead of an error.
func Set(ctx context.Context, jar Jar, name, value string, days int, now time.Time) (Result, error) {
	if !jar.Enabled() {
		return Result{Notice: NoticeDisabled}, nil
	}
	if name == "" {
		return Result{}, ErrEmptyName
	}

	expires := now.Add(time.Duration(days) * Day)
	if err := jar.Write(ctx, FormatLine(name, value, expires)); err != nil {
		return Result{}, fmt.Errorf("error writing cookie %q: %w", name, err)
	}

	return Result{Written: true, Expires: expires}, nil
}

// Get returns the value of the first cookie called name. The boolean is false
// when no such cookie exists.
func Get(ctx context.Context, jar Jar, name string) (string, bool, error) {
	raw, err := jar.Read(ctx)
	if err != nil {
		return "", false, fmt.Errorf("error reading cookies: %w", err)
	}

	value, ok := Lookup(raw, name)
	return value, ok, nil
}

// Lookup scans a "; "-delimited cookie string and returns the value of the
// first entry that starts with name + "=". The value is everything after the
// first "=".
func Lookup(raw, name string) (string, bool) {
	prefix := name + "="
	for _, entry := range strings.Split(raw, "; ") {
		if strings.HasPrefix(entry, prefix) {
			return entry[len(prefix):], true
		}
	}
	return "", false
}

// Join renders cookies the way document.cookie shows them.
func Join(list []Cookie) string {
	parts := make([]string, 0, len(list))
	for _, c := range list {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

// FormatLine builds the line written by Set. The expiry uses the HTTP date
// format in UTC.
func FormatLine(name, value string, expires time.Time) string {
	return fmt.Sprintf("%s=%s; expires=%s; path=%s", name, value, expires.UTC().Format(http.TimeFormat), RootPath)
}

// ParseLine decodes a set-cookie line.
func ParseLine(line string) (Cookie, error) {
	c, err := http.ParseSetCookie(line)
	if err != nil {
		return Cookie{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	return Cookie{
		Name:    c.Name,
		Value:   c.Value,
		Path:    c.Path,
		Expires: c.Expires,
	}, nil
}
