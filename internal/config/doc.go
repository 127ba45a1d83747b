// Package config loads, merges and validates the configuration of the
// registration form binaries.
//
// Sources, later ones overriding non-zero fields of earlier ones:
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// [GetServerConfig] and [GetClientConfig] return the view each binary needs.
package config
