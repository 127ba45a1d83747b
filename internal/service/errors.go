package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned when no application version is
	// configured.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
