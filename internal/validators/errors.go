package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Per-field failures. The error text is the message shown next to the field.
var (
	ErrInvalidUsername        = errors.New(MsgUsername)
	ErrInvalidEmail           = errors.New(MsgEmail)
	ErrInvalidPassword        = errors.New(MsgPassword)
	ErrInvalidConfirmPassword = errors.New(MsgConfirmPassword)
	ErrInvalidPhone           = errors.New(MsgPhone)
)
