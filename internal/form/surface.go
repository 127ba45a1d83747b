package form

import (
	"github.com/MKhiriev/go-register-form/models"
)

// Surface is an in-memory [UI]. The HTTP surface builds one per request from
// the posted values; tests use it as a fake DOM.
type Surface struct {
	values         map[models.FieldID]string
	validity       map[models.FieldID]models.Validity
	texts          map[string]string
	rememberMe     bool
	acknowledgment string
}

var _ UI = (*Surface)(nil)

// NewSurface returns a surface pre-filled with reg. No field carries a
// marker yet.
func NewSurface(reg models.Registration) *Surface {
	s := &Surface{
		values:   make(map[models.FieldID]string, len(models.Fields)),
		validity: make(map[models.FieldID]models.Validity, len(models.Fields)),
		texts:    make(map[string]string),
	}
	for _, id := range models.Fields {
		s.values[id] = reg.Value(id)
	}
	s.rememberMe = reg.RememberMe
	return s
}

func (s *Surface) Value(id models.FieldID) string {
	return s.values[id]
}

func (s *Surface) SetValue(id models.FieldID, value string) {
	s.values[id] = value
}

func (s *Surface) RememberMe() bool {
	return s.rememberMe
}

// SetRememberMe checks or unchecks the toggle.
func (s *Surface) SetRememberMe(checked bool) {
	s.rememberMe = checked
}

func (s *Surface) SetValidity(id models.FieldID, v models.Validity) {
	if v == models.ValidityUnset {
		delete(s.validity, id)
		return
	}
	s.validity[id] = v
}

func (s *Surface) SetText(slot, text string) {
	s.texts[slot] = text
}

func (s *Surface) InvalidCount() int {
	n := 0
	for _, v := range s.validity {
		if v == models.ValidityInvalid {
			n++
		}
	}
	return n
}

func (s *Surface) Acknowledge(message string) {
	s.acknowledgment = message
}

// Reset empties values, markers, error slots and the strength text. The
// cookie notice and the acknowledgment stay visible.
func (s *Surface) Reset() {
	for _, id := range models.Fields {
		s.values[id] = ""
		delete(s.texts, id.ErrorSlot())
	}
	clear(s.validity)
	delete(s.texts, models.SlotPasswordStrength)
	s.rememberMe = false
}

// Validity returns the marker of a field.
func (s *Surface) Validity(id models.FieldID) models.Validity {
	return s.validity[id]
}

// Text returns the content of a slot.
func (s *Surface) Text(slot string) string {
	return s.texts[slot]
}

// Acknowledgment returns the last success message shown.
func (s *Surface) Acknowledgment() string {
	return s.acknowledgment
}

// Field returns the snapshot of one field.
func (s *Surface) Field(id models.FieldID) models.FieldState {
	return models.FieldState{
		ID:       id,
		Value:    s.values[id],
		Validity: s.validity[id],
		Error:    s.texts[id.ErrorSlot()],
	}
}

// Snapshot returns every validated field in submit order.
func (s *Surface) Snapshot() []models.FieldState {
	out := make([]models.FieldState, 0, len(models.Fields))
	for _, id := range models.Fields {
		out = append(out, s.Field(id))
	}
	return out
}

// Registration returns the current values as a form.
func (s *Surface) Registration() models.Registration {
	reg := models.Registration{RememberMe: s.rememberMe}
	for _, id := range models.Fields {
		reg.Set(id, s.values[id])
	}
	return reg
}
