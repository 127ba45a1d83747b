// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-register-form/models"
)

// RegistrationValidator implements [Validator] for [models.Registration].
// Field names passed to Validate are the form element ids ("username",
// "email", ...). With no names all five fields are checked in submit order.
type RegistrationValidator struct {
}

// NewRegistrationValidator constructs a new RegistrationValidator
// and returns it as the Validator interface.
func NewRegistrationValidator() Validator {
	return &RegistrationValidator{}
}

// Validate returns the sentinel error of the first failing field, or
// ErrUnsupportedType / ErrUnknownField for bad input.
func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validateRegistration(_ context.Context, reg models.Registration, fields ...string) error {
	ids := make([]models.FieldID, 0, len(models.Fields))
	if len(fields) == 0 {
		ids = append(ids, models.Fields...)
	}
	for _, f := range fields {
		ids = append(ids, models.FieldID(f))
	}

	for _, id := range ids {
		rule, ok := Rule(id)
		if !ok {
			return ErrUnknownField
		}
		if !rule.Match(reg) {
			return rule.Err
		}
	}

	return nil
}
