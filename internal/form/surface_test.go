package form

import (
	"testing"

	"github.com/MKhiriev/go-register-form/models"
	"github.com/stretchr/testify/assert"
)

func TestSurface_ValidityIsExclusive(t *testing.T) {
	s := NewSurface(models.Registration{})

	s.SetValidity(models.FieldEmail, models.ValidityInvalid)
	s.SetValidity(models.FieldEmail, models.ValidityValid)

	assert.Equal(t, models.ValidityValid, s.Validity(models.FieldEmail))
	assert.Equal(t, 0, s.InvalidCount())
}

func TestSurface_InvalidCount(t *testing.T) {
	s := NewSurface(models.Registration{})
	s.SetValidity(models.FieldEmail, models.ValidityInvalid)
	s.SetValidity(models.FieldPhone, models.ValidityInvalid)
	s.SetValidity(models.FieldUsername, models.ValidityValid)

	assert.Equal(t, 2, s.InvalidCount())

	s.SetValidity(models.FieldPhone, models.ValidityUnset)
	assert.Equal(t, 1, s.InvalidCount())
}

func TestSurface_ResetKeepsNotices(t *testing.T) {
	s := NewSurface(validRegistration())
	s.SetValidity(models.FieldEmail, models.ValidityInvalid)
	s.SetText("emailError", "invalid email address")
	s.SetText(models.SlotPasswordStrength, "strong")
	s.SetText(models.SlotCookieMessage, "cookies are disabled in this browser")
	s.Acknowledge("done")

	s.Reset()

	assert.Equal(t, models.Registration{}, s.Registration())
	assert.Equal(t, 0, s.InvalidCount())
	assert.Empty(t, s.Text("emailError"))
	assert.Empty(t, s.Text(models.SlotPasswordStrength))
	assert.Equal(t, "cookies are disabled in this browser", s.Text(models.SlotCookieMessage))
	assert.Equal(t, "done", s.Acknowledgment())
}

func TestSurface_RegistrationRoundTrip(t *testing.T) {
	reg := validRegistration()
	assert.Equal(t, reg, NewSurface(reg).Registration())
}
