// Package server runs the HTTP listener of the registration form and shuts
// it down gracefully when its context is cancelled.
package server
