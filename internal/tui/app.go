package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/MKhiriev/go-register-form/models"
)

// textCapturer is implemented by pages that can have a text input focused.
// Global single-letter hotkeys are not stolen from such pages.
type textCapturer interface {
	CapturesText() bool
}

// RootModel wraps the active page:
// 1) handles global ctrl+c quit
// 2) toggles the build-info window
// 3) delegates all other messages to the page
type RootModel struct {
	current   tea.Model
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

func NewRootModel(page tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		current:   page,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && (r.showBuildInfo || !r.capturesText()):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) capturesText() bool {
	tc, ok := r.current.(textCapturer)
	return ok && tc.CapturesText()
}
