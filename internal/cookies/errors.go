package cookies

import "errors"

var (
	// ErrMalformedLine is returned when a set-cookie line cannot be parsed.
	ErrMalformedLine = errors.New("malformed set-cookie line")

	// ErrEmptyName is returned when a cookie without a name is written.
	ErrEmptyName = errors.New("cookie name is empty")
)

// User-facing notices written to the cookie message slot.
const (
	NoticeDisabled   = "cookies are disabled in this browser"
	NoticeSaveFailed = "remembered username could not be saved"
)
