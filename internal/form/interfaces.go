// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"

	"github.com/MKhiriev/go-register-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/form_ui_mock.go -package=mock

// UI is the surface the controller reads values from and reflects validity
// on. Implementations own the field values; the controller only reads them
// and writes markers and text slots.
type UI interface {
	// Value returns the current text of a field.
	Value(id models.FieldID) string

	// SetValue replaces the text of a field. Used to pre-fill the
	// remembered username.
	SetValue(id models.FieldID, value string)

	// RememberMe reports whether the remember-me toggle is checked.
	RememberMe() bool

	// SetValidity sets the field's marker. Valid and invalid are mutually
	// exclusive, so setting one removes the other.
	SetValidity(id models.FieldID, v models.Validity)

	// SetText sets the text content of a slot: "<fieldId>Error",
	// "passwordStrength" or "cookieMessage".
	SetText(slot, text string)

	// InvalidCount returns how many elements of the whole form carry the
	// invalid marker.
	InvalidCount() int

	// Acknowledge presents the success message of an accepted submission.
	Acknowledge(message string)

	// Reset empties every field and toggle and clears the markers.
	Reset()
}

// Handler receives the three event classes of the form. Each call runs to
// completion before the next event is dispatched.
type Handler interface {
	OnBlur(ctx context.Context, id models.FieldID)
	OnInput(ctx context.Context, id models.FieldID)
	OnSubmit(ctx context.Context) models.SubmitResult
}
