// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/validators"
	"github.com/MKhiriev/go-register-form/models"
)

// Controller implements [Handler] for one form instance.
//
// It is not safe for concurrent use: a form has a single event loop and
// every handler runs to completion.
type Controller struct {
	ui  UI
	jar cookies.Jar

	cookieName string
	cookieDays int
	now        func() time.Time
	validator  validators.Validator
	logger     *logger.Logger

	state models.SubmitState
}

var _ Handler = (*Controller)(nil)

// NewController builds a controller over the given UI and cookie jar.
func NewController(ui UI, jar cookies.Jar, opts ...Option) *Controller {
	c := &Controller{
		ui:         ui,
		jar:        jar,
		cookieName: DefaultCookieName,
		cookieDays: DefaultCookieDays,
		now:        time.Now,
		validator:  validators.NewRegistrationValidator(),
		logger:     logger.Nop(),
		state:      models.SubmitIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the state of the submission gate. The outcome of a submit
// stays visible until the next event, which puts the gate back to idle.
func (c *Controller) State() models.SubmitState {
	return c.state
}

// Restore pre-fills the username from the remembered cookie and marks it
// valid. The rule itself is not run: the value was valid when it was saved.
// A missing or empty cookie leaves the form untouched.
func (c *Controller) Restore(ctx context.Context) error {
	saved, ok, err := cookies.Get(ctx, c.jar, c.cookieName)
	if err != nil {
		return fmt.Errorf("error restoring remembered username: %w", err)
	}
	if !ok || saved == "" {
		return nil
	}

	c.ui.SetValue(models.FieldUsername, saved)
	c.showValid(models.FieldUsername)
	c.logger.Debug().Str("username", saved).Msg("remembered username restored")
	return nil
}

// OnBlur validates the field that lost focus. Ids without a rule are
// ignored.
func (c *Controller) OnBlur(ctx context.Context, id models.FieldID) {
	c.state = models.SubmitIdle
	if !id.IsValidated() {
		return
	}
	c.validate(ctx, c.registration(), id)
}

// OnInput refreshes the password-strength text. Only the password field
// reacts; its valid/invalid marker is left to the next blur.
func (c *Controller) OnInput(_ context.Context, id models.FieldID) {
	c.state = models.SubmitIdle
	if id != models.FieldPassword {
		return
	}
	c.ui.SetText(models.SlotPasswordStrength, validators.Strength(c.ui.Value(models.FieldPassword)))
}

// OnSubmit runs the submission gate. Every field is re-validated, so a
// stale marker can never let invalid data through. The form is accepted
// only when no element of the UI carries the invalid marker.
func (c *Controller) OnSubmit(ctx context.Context) models.SubmitResult {
	c.state = models.SubmitValidating

	reg := c.registration()
	result := models.SubmitResult{Fields: make([]models.FieldState, 0, len(models.Fields))}
	for _, id := range models.Fields {
		result.Fields = append(result.Fields, c.validate(ctx, reg, id))
	}

	if n := c.ui.InvalidCount(); n > 0 {
		c.state = models.SubmitRejected
		result.State = c.state
		c.logger.Debug().Int("invalid", n).Msg("submission rejected")
		return result
	}

	if reg.RememberMe {
		result.CookieWritten, result.CookieNotice = c.remember(ctx, reg.Username)
	}

	c.ui.Acknowledge(Acknowledgment)
	c.ui.Reset()

	c.state = models.SubmitAccepted
	result.State = c.state
	result.Acknowledgment = Acknowledgment
	c.logger.Info().Bool("remembered", result.CookieWritten).Msg("registration accepted")
	return result
}

// remember writes the username cookie. Failures never block the
// registration; they end up as a notice in the cookie message slot.
func (c *Controller) remember(ctx context.Context, username string) (bool, string) {
	res, err := cookies.Set(ctx, c.jar, c.cookieName, username, c.cookieDays, c.now())
	if err != nil {
		c.logger.Err(err).Msg("error saving remembered username")
		res.Notice = cookies.NoticeSaveFailed
	}
	if res.Notice != "" {
		c.ui.SetText(models.SlotCookieMessage, res.Notice)
	}
	return res.Written, res.Notice
}

func (c *Controller) registration() models.Registration {
	reg := models.Registration{RememberMe: c.ui.RememberMe()}
	for _, id := range models.Fields {
		reg.Set(id, c.ui.Value(id))
	}
	return reg
}

// validate runs the rule of one field. The error text of a failed rule is
// the message shown next to the field.
func (c *Controller) validate(ctx context.Context, reg models.Registration, id models.FieldID) models.FieldState {
	state := models.FieldState{ID: id, Value: reg.Value(id)}

	err := c.validator.Validate(ctx, reg, string(id))
	if err == nil {
		c.showValid(id)
		state.Validity = models.ValidityValid
		return state
	}

	c.showError(id, err.Error())
	c.logger.WithField("field", string(id)).Debug().Str("reason", err.Error()).Msg("field rejected")
	state.Validity = models.ValidityInvalid
	state.Error = err.Error()
	return state
}

func (c *Controller) showValid(id models.FieldID) {
	c.ui.SetValidity(id, models.ValidityValid)
	c.ui.SetText(id.ErrorSlot(), "")
}

func (c *Controller) showError(id models.FieldID, message string) {
	c.ui.SetValidity(id, models.ValidityInvalid)
	c.ui.SetText(id.ErrorSlot(), message)
}
