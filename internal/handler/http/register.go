package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-register-form/internal/form"
	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/utils"
	"github.com/MKhiriev/go-register-form/internal/validators"
	"github.com/MKhiriev/go-register-form/models"
)

const (
	maxBodyBytes = 1 << 20

	// cookiesEnabledHeader is sent by the page script with the value of
	// navigator.cookieEnabled.
	cookiesEnabledHeader = "X-Cookies-Enabled"
)

type strengthResponse struct {
	PasswordStrength string `json:"passwordStrength"`
}

type rememberedResponse struct {
	Username string `json:"username"`
}

// blur runs the blur handler of one field and answers with its state.
func (h *Handler) blur(w http.ResponseWriter, r *http.Request) {
	id, err := fieldParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	reg, err := decodeRegistration(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	surface, ctl, _ := h.newForm(r, reg)
	ctl.OnBlur(r.Context(), id)

	utils.WriteJSON(w, redact(surface.Field(id)), http.StatusOK)
}

// input refreshes the password strength. Other fields have nothing to
// report.
func (h *Handler) input(w http.ResponseWriter, r *http.Request) {
	id, err := fieldParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	reg, err := decodeRegistration(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	surface, ctl, _ := h.newForm(r, reg)
	ctl.OnInput(r.Context(), id)

	if id != models.FieldPassword {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.WriteJSON(w, strengthResponse{PasswordStrength: surface.Text(models.SlotPasswordStrength)}, http.StatusOK)
}

// submit runs the submission gate. Cookies are set before the status line,
// so they reach the browser together with the acknowledgment.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	reg, err := decodeRegistration(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, ctl, jar := h.newForm(r, reg)
	result := ctl.OnSubmit(r.Context())
	jar.flush(w)

	for i := range result.Fields {
		result.Fields[i] = redact(result.Fields[i])
	}

	status := http.StatusOK
	if !result.Accepted() {
		status = http.StatusUnprocessableEntity
	}
	utils.WriteJSON(w, result, status)
}

// remembered returns the username cookie, or 204 when there is none.
func (h *Handler) remembered(w http.ResponseWriter, r *http.Request) {
	username, err := h.services.RegistrationService.Remembered(r.Context(), h.newJar(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if username == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, rememberedResponse{Username: h.stripMarkup(username)}, http.StatusOK)
}

// registerPage renders the form with the remembered username restored.
func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	surface, ctl, _ := h.newForm(r, models.Registration{})
	if err := ctl.Restore(r.Context()); err != nil {
		log.Err(err).Msg("page rendered without remembered username")
	}

	data := pageData{
		Version:          h.services.AppInfoService.GetAppVersion(r.Context()),
		Username:         h.stripMarkup(surface.Value(models.FieldUsername)),
		UsernameValidity: surface.Validity(models.FieldUsername).String(),
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		writeError(w, r, fmt.Errorf("error rendering register page: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) newForm(r *http.Request, reg models.Registration) (*form.Surface, *form.Controller, *requestJar) {
	surface := form.NewSurface(reg)
	jar := h.newJar(r)
	return surface, h.services.RegistrationService.Form(r.Context(), surface, jar), jar
}

func (h *Handler) newJar(r *http.Request) *requestJar {
	enabled := !h.services.RegistrationService.CookiesDisabled() &&
		r.Header.Get(cookiesEnabledHeader) != "false"
	return newRequestJar(r, enabled)
}

func fieldParam(r *http.Request) (models.FieldID, error) {
	id := models.FieldID(chi.URLParam(r, "field"))
	if !id.IsValidated() {
		return "", fmt.Errorf("%w: %q", validators.ErrUnknownField, id)
	}
	return id, nil
}

func decodeRegistration(w http.ResponseWriter, r *http.Request) (models.Registration, error) {
	var reg models.Registration

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return reg, ErrBodyTooLarge
		}
		return reg, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return reg, nil
}

// redact drops password values from a field state before it leaves the
// server.
func redact(s models.FieldState) models.FieldState {
	if s.ID == models.FieldPassword || s.ID == models.FieldConfirmPassword {
		s.Value = ""
	}
	return s
}
