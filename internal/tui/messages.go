package tui

// copiedMsg reports the outcome of copying the remembered username.
type copiedMsg struct {
	username string
	err      error
}

type clearStatusMsg struct{}
