// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-register-form/models"
)

// Failure messages shown in the field's error slot.
const (
	MsgUsername        = "minimum 4 characters (letters, digits, or underscore)"
	MsgEmail           = "invalid email address"
	MsgPassword        = "needs 8+ chars, upper, lower, digit, symbol"
	MsgConfirmPassword = "passwords do not match"
	MsgPhone           = "invalid phone format"
)

// Password strength labels.
const (
	StrengthStrong = "strong"
	StrengthWeak   = "weak"
)

// RE2 \s is ASCII only and . excludes only \n. The rules treat Unicode
// spaces (NBSP, em-space, BOM, ...) as whitespace and every line
// terminator as a line break.
const (
	space   = `\s\x0B\p{Z}\x{FEFF}`
	notLine = `[^\n\r\x{2028}\x{2029}]`
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{4,}$`)
	emailPattern    = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[\d` + space + `()-]{7,}$`)

	// RE2 has no lookahead, so the password rule is a conjunction.
	passwordLength = regexp.MustCompile(`^` + notLine + `{8,}$`)
	passwordLower  = regexp.MustCompile(`[a-z]`)
	passwordUpper  = regexp.MustCompile(`[A-Z]`)
	passwordDigit  = regexp.MustCompile(`[0-9]`)
)

// ValidationRule pairs a predicate over a field value with its failure
// message. Match receives the whole form because confirmPassword depends on
// the password value.
type ValidationRule struct {
	Field   models.FieldID
	Message string
	Match   func(reg models.Registration) bool
	Err     error
}

// rules is indexed by field id; see Rule.
var rules = map[models.FieldID]ValidationRule{
	models.FieldUsername: {
		Field:   models.FieldUsername,
		Message: MsgUsername,
		Match:   func(reg models.Registration) bool { return IsUsername(reg.Username) },
		Err:     ErrInvalidUsername,
	},
	models.FieldEmail: {
		Field:   models.FieldEmail,
		Message: MsgEmail,
		Match:   func(reg models.Registration) bool { return IsEmail(reg.Email) },
		Err:     ErrInvalidEmail,
	},
	models.FieldPassword: {
		Field:   models.FieldPassword,
		Message: MsgPassword,
		Match:   func(reg models.Registration) bool { return IsStrongPassword(reg.Password) },
		Err:     ErrInvalidPassword,
	},
	models.FieldConfirmPassword: {
		Field:   models.FieldConfirmPassword,
		Message: MsgConfirmPassword,
		Match: func(reg models.Registration) bool {
			return PasswordsMatch(reg.Password, reg.ConfirmPassword)
		},
		Err: ErrInvalidConfirmPassword,
	},
	models.FieldPhone: {
		Field:   models.FieldPhone,
		Message: MsgPhone,
		Match:   func(reg models.Registration) bool { return IsPhone(reg.Phone) },
		Err:     ErrInvalidPhone,
	},
}

// Rule returns the rule for a validated field.
func Rule(id models.FieldID) (ValidationRule, bool) {
	r, ok := rules[id]
	return r, ok
}

// Check runs the rule of one field against the form values. It returns the
// verdict and, on failure, the message for the field's error slot. Fields
// without a rule report ok.
func Check(reg models.Registration, id models.FieldID) (ok bool, message string) {
	r, found := rules[id]
	if !found {
		return true, ""
	}
	if r.Match(reg) {
		return true, ""
	}
	return false, r.Message
}

// IsUsername reports whether s has at least 4 characters, all letters,
// digits or underscore.
func IsUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsStrongPassword reports whether p has 8+ characters on a single line with
// at least one lowercase letter, uppercase letter, digit and symbol.
func IsStrongPassword(p string) bool {
	return passwordLength.MatchString(p) &&
		passwordLower.MatchString(p) &&
		passwordUpper.MatchString(p) &&
		passwordDigit.MatchString(p) &&
		hasSymbol(p)
}

// hasSymbol reports whether p holds a character that is neither an ASCII
// letter or digit nor whitespace. Underscore counts as a symbol.
func hasSymbol(p string) bool {
	return strings.IndexFunc(p, func(r rune) bool {
		if isSpace(r) {
			return false
		}
		isWord := r < unicode.MaxASCII && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
		return !isWord
	}) >= 0
}

// isSpace matches the same runes as the space class of the patterns.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}

// PasswordsMatch reports whether confirm is non-empty and equal to password.
func PasswordsMatch(password, confirm string) bool {
	return confirm != "" && confirm == password
}

// IsPhone reports whether s is empty (the field is optional) or 7+
// characters of digits, spaces, parentheses and hyphens with an optional
// leading plus.
func IsPhone(s string) bool {
	if s == "" {
		return true
	}
	return phonePattern.MatchString(s)
}

// Strength returns the informational password label.
func Strength(password string) string {
	if IsStrongPassword(password) {
		return StrengthStrong
	}
	return StrengthWeak
}
