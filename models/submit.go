package models

// SubmitState is the state of the submission gate.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	SubmitValidating
	SubmitAccepted
	SubmitRejected
)

func (s SubmitState) String() string {
	switch s {
	case SubmitValidating:
		return "validating"
	case SubmitAccepted:
		return "accepted"
	case SubmitRejected:
		return "rejected"
	default:
		return "idle"
	}
}

func (s SubmitState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SubmitResult describes the outcome of one submit attempt.
//
// Fields holds the state of every validated field right after validation,
// before an accepted form is reset.
type SubmitResult struct {
	State          SubmitState  `json:"state"`
	Fields         []FieldState `json:"fields"`
	CookieWritten  bool         `json:"cookieWritten"`
	CookieNotice   string       `json:"cookieNotice,omitempty"`
	Acknowledgment string       `json:"acknowledgment,omitempty"`
}

// Accepted reports whether the submission passed the gate.
func (r SubmitResult) Accepted() bool {
	return r.State == SubmitAccepted
}
