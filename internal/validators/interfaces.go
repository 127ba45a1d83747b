// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the registration form's field rules.
//
// Core concepts:
//   - ValidationRule: a pure predicate over a field value plus the message
//     shown when the predicate fails. Rules are constant for the process
//     lifetime.
//   - Validator: generic interface validating a value, optionally scoped to a
//     subset of named fields.
//
// Usage patterns:
//  1. Call Validate on a models.Registration to get a sentinel error for the
//     first failing field (the form controller does this on every blur and
//     submit, one field at a time).
//  2. Call Check for a single field when only the verdict and the message
//     are needed.
//  3. Call Strength for the informational password-strength label.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
