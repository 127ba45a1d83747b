package tui

import "errors"

var (
	ErrNoRegistrationService = errors.New("registration service is not set")
	ErrNoCookieJar           = errors.New("cookie jar is not set")
)
