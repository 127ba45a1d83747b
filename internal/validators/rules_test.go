// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-register-form/models"
	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// Username
// ---------------------------------------------------------------------------

func TestIsUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exactly four letters", "abcd", true},
		{"letters digits underscore", "user_1", true},
		{"only underscores", "____", true},
		{"long", strings.Repeat("a", 64), true},
		{"too short", "ab", false},
		{"three chars", "ab1", false},
		{"empty", "", false},
		{"hyphen", "user-1", false},
		{"space", "user 1", false},
		{"dot", "user.name", false},
		{"non ascii letter", "usér", false},
		{"trailing newline", "user\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUsername(tt.input))
		})
	}
}

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "a@b.com", true},
		{"subdomain", "user@mail.example.com", true},
		{"plus tag", "user+tag@example.org", true},
		{"missing at", "user.example.com", false},
		{"missing dot after at", "user@example", false},
		{"two ats", "a@b@c.com", false},
		{"space in local part", "a b@c.com", false},
		{"no-break space in local part", "a\u00a0b@example.com", false},
		{"em space in domain", "a@exa\u2003mple.com", false},
		{"byte order mark", "a\ufeff@example.com", false},
		{"empty local part", "@b.com", false},
		{"empty tld", "a@b.", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.input))
		})
	}
}

// ---------------------------------------------------------------------------
// Password
// ---------------------------------------------------------------------------

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"all classes", "Abcdef1!", true},
		{"underscore is a symbol", "Abcdef1_", true},
		{"non ascii letter is a symbol", "Abcdef1é", true},
		{"long", "Str0ng#Passw0rd-with-extra", true},
		{"seven chars", "Abcd1!x", false},
		{"no upper", "abcdef1!", false},
		{"no lower", "ABCDEF1!", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
		{"space is not a symbol", "Abcdef1 ", false},
		{"line break", "Abcd\nef1!", false},
		{"trailing carriage return", "Abcdef1!\r", false},
		{"line separator", "Abcd\u2028ef1!", false},
		{"no-break space is not a symbol", "Abcdef1\u00a0", false},
		{"next line is a symbol", "Abcdef1\u0085", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.input))
		})
	}
}

func TestStrength(t *testing.T) {
	assert.Equal(t, StrengthStrong, Strength("Abcdef1!"))
	assert.Equal(t, StrengthWeak, Strength("abc"))
	assert.Equal(t, StrengthWeak, Strength(""))
}

// ---------------------------------------------------------------------------
// Confirm password
// ---------------------------------------------------------------------------

func TestPasswordsMatch(t *testing.T) {
	assert.True(t, PasswordsMatch("Abcdef1!", "Abcdef1!"))
	assert.True(t, PasswordsMatch("weak", "weak"), "only equality is checked, not strength")
	assert.False(t, PasswordsMatch("Abcdef1!", "Abcdef1?"))
	assert.False(t, PasswordsMatch("Abcdef1!", ""))
	assert.False(t, PasswordsMatch("", ""), "empty confirmation is invalid even when password is empty")
}

// ---------------------------------------------------------------------------
// Phone
// ---------------------------------------------------------------------------

func TestIsPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty is optional", "", true},
		{"international", "+1 (555) 123-4567", true},
		{"seven digits", "5551234", true},
		{"only separators", "-------", true},
		{"six digits", "555123", false},
		{"letters", "555-CALL-NOW", false},
		{"plus in the middle", "555+1234567", false},
		{"two leading pluses", "++15551234", false},
		{"dots", "555.123.4567", false},
		{"em space separator", "+1\u2003555 123 4567", true},
		{"no-break space separator", "555\u00a01234", true},
		{"tab separator", "555\t1234", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.input))
		})
	}
}

// ---------------------------------------------------------------------------
// Check
// ---------------------------------------------------------------------------

func TestCheck(t *testing.T) {
	reg := models.Registration{
		Username:        "ab",
		Email:           "a@b.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	}

	ok, msg := Check(reg, models.FieldUsername)
	assert.False(t, ok)
	assert.Equal(t, MsgUsername, msg)

	for _, id := range []models.FieldID{models.FieldEmail, models.FieldPassword, models.FieldConfirmPassword, models.FieldPhone} {
		ok, msg = Check(reg, id)
		assert.True(t, ok, id)
		assert.Empty(t, msg, id)
	}

	ok, msg = Check(reg, models.FieldRememberMe)
	assert.True(t, ok, "fields without a rule never fail")
	assert.Empty(t, msg)
}

func TestRule_MessagesMatchErrors(t *testing.T) {
	for _, id := range models.Fields {
		r, ok := Rule(id)
		if assert.True(t, ok, id) {
			assert.Equal(t, r.Message, r.Err.Error(), id)
			assert.Equal(t, id, r.Field)
		}
	}

	_, ok := Rule(models.FieldRememberMe)
	assert.False(t, ok)
}
