// Package tui is the terminal surface of the registration form, built on
// bubbletea, bubbles and lipgloss.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/service"
	"github.com/MKhiriev/go-register-form/models"
)

type TUI struct {
	services  *service.Services
	jar       cookies.Jar
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.Services, jar cookies.Jar, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.RegistrationService == nil {
		return nil, ErrNoRegistrationService
	}
	if jar == nil {
		return nil, ErrNoCookieJar
	}

	return &TUI{
		services:       services,
		jar:            jar,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run shows the form until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	page := NewRegisterModel(ctx, t.services.RegistrationService, t.jar, t.logger)
	root := NewRootModel(page, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running terminal form: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("terminal form closed by user")
	}
	return nil
}
