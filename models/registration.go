// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Registration holds the raw values of the registration form.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
	RememberMe      bool   `json:"rememberMe"`
}

// Value returns the current value of the given field, or "" for ids that
// carry no text.
func (r Registration) Value(id FieldID) string {
	switch id {
	case FieldUsername:
		return r.Username
	case FieldEmail:
		return r.Email
	case FieldPassword:
		return r.Password
	case FieldConfirmPassword:
		return r.ConfirmPassword
	case FieldPhone:
		return r.Phone
	default:
		return ""
	}
}

// Set assigns value to the given field. Unknown ids are ignored.
func (r *Registration) Set(id FieldID, value string) {
	switch id {
	case FieldUsername:
		r.Username = value
	case FieldEmail:
		r.Email = value
	case FieldPassword:
		r.Password = value
	case FieldConfirmPassword:
		r.ConfirmPassword = value
	case FieldPhone:
		r.Phone = value
	}
}
