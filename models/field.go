// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared by the validation rules,
// the form controller and both UI surfaces.
package models

// FieldID identifies one element of the registration form. The values match
// the element ids of the HTML page, so the HTTP surface can use them as is.
type FieldID string

const (
	FieldUsername        FieldID = "username"
	FieldEmail           FieldID = "email"
	FieldPassword        FieldID = "password"
	FieldConfirmPassword FieldID = "confirmPassword"
	FieldPhone           FieldID = "phone"

	// FieldRememberMe is the opt-in toggle. It is never validated.
	FieldRememberMe FieldID = "rememberMe"
)

// Slots that are not tied to a single field.
const (
	SlotPasswordStrength = "passwordStrength"
	SlotCookieMessage    = "cookieMessage"
)

// Fields lists the validated fields in the order the submit gate runs them.
var Fields = []FieldID{
	FieldUsername,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldPhone,
}

// ErrorSlot returns the id of the element that shows the field's error text.
func (f FieldID) ErrorSlot() string {
	return string(f) + "Error"
}

// IsValidated reports whether f is one of the five validated fields.
func (f FieldID) IsValidated() bool {
	for _, id := range Fields {
		if id == f {
			return true
		}
	}
	return false
}

// Validity is the visual marker of a field. Valid and invalid are mutually
// exclusive; a field that has never been checked (or was reset) is unset.
type Validity int

const (
	ValidityUnset Validity = iota
	ValidityValid
	ValidityInvalid
)

// String returns the marker class name: "", "valid" or "invalid".
func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	default:
		return ""
	}
}

// MarshalText lets Validity appear as its class name in JSON payloads.
func (v Validity) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// FieldState is a snapshot of one field as the UI currently shows it.
type FieldState struct {
	ID       FieldID  `json:"id"`
	Value    string   `json:"value"`
	Validity Validity `json:"validity"`
	Error    string   `json:"error"`
}
