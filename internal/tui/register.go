package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/form"
	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/service"
	"github.com/MKhiriev/go-register-form/models"
)

const (
	inputWidth  = 32
	labelWidth  = 18
	statusDelay = 2 * time.Second
)

var fieldLabels = map[models.FieldID]string{
	models.FieldUsername:        "Username",
	models.FieldEmail:           "Email",
	models.FieldPassword:        "Password",
	models.FieldConfirmPassword: "Confirm password",
	models.FieldPhone:           "Phone (optional)",
}

// RegisterModel is the terminal registration form. It is the [form.UI] of
// its controller: the controller reads the text inputs and writes markers
// and slots back into the model.
//
// Focus order: the five inputs, the remember-me checkbox, the register
// button. Leaving an input is its blur event.
type RegisterModel struct {
	ctx          context.Context
	registration service.RegistrationService
	jar          cookies.Jar
	ctl          *form.Controller
	logger       *logger.Logger

	inputs     []textinput.Model
	rememberMe bool
	focus      int

	validity map[models.FieldID]models.Validity
	texts    map[string]string
	overlay  noticeOverlayModel
	status   string
}

var _ form.UI = (*RegisterModel)(nil)

// Focus positions after the text inputs.
var (
	focusRememberMe = len(models.Fields)
	focusSubmit     = focusRememberMe + 1
	focusCount      = focusSubmit + 1
)

// NewRegisterModel builds the form and its controller over jar.
func NewRegisterModel(ctx context.Context, registration service.RegistrationService, jar cookies.Jar, logger *logger.Logger) *RegisterModel {
	inputs := make([]textinput.Model, len(models.Fields))
	for i, id := range models.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = strings.ToLower(fieldLabels[id])
		in.Width = inputWidth
		if id == models.FieldPassword || id == models.FieldConfirmPassword {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	inputs[0].Focus()

	m := &RegisterModel{
		ctx:          ctx,
		registration: registration,
		jar:          jar,
		logger:       logger,
		inputs:       inputs,
		validity:     make(map[models.FieldID]models.Validity, len(models.Fields)),
		texts:        make(map[string]string),
	}
	m.ctl = registration.Form(ctx, m, jar)
	return m
}

// Init restores the remembered username before the first frame.
func (m *RegisterModel) Init() tea.Cmd {
	if err := m.ctl.Restore(m.ctx); err != nil {
		m.logger.Err(err).Msg("error restoring remembered username")
	}
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		switch {
		case msg.err != nil:
			m.status = "copy failed: " + msg.err.Error()
		default:
			m.status = "copied " + msg.username + " to clipboard"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInput(msg)
}

func (m *RegisterModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay.visible() {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay.message = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		m.submit()
		return m, nil
	case key.Matches(msg, keys.copyUser):
		return m, m.cmdCopyRemembered()
	case key.Matches(msg, keys.toggle) && m.focus == focusRememberMe:
		m.rememberMe = !m.rememberMe
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the focused text input. A change to the
// password value is its input event.
func (m *RegisterModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.CapturesText() {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if id := models.Fields[m.focus]; id == models.FieldPassword && m.inputs[m.focus].Value() != before {
		m.ctl.OnInput(m.ctx, id)
	}
	return m, cmd
}

func (m *RegisterModel) moveFocus(delta int) {
	if m.CapturesText() {
		m.inputs[m.focus].Blur()
		m.ctl.OnBlur(m.ctx, models.Fields[m.focus])
	}

	m.focus = (m.focus + delta + focusCount) % focusCount
	if m.CapturesText() {
		m.inputs[m.focus].Focus()
	}
}

func (m *RegisterModel) submit() {
	result := m.ctl.OnSubmit(m.ctx)
	if !result.Accepted() {
		m.status = fmt.Sprintf("%d field(s) need attention", m.InvalidCount())
		return
	}

	m.status = ""
	m.focusFirst()
}

func (m *RegisterModel) focusFirst() {
	if m.CapturesText() {
		m.inputs[m.focus].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

// cmdCopyRemembered reads the jar on the event loop and leaves only the
// clipboard write to the command.
func (m *RegisterModel) cmdCopyRemembered() tea.Cmd {
	username, err := m.registration.Remembered(m.ctx, m.jar)
	if err == nil && username == "" {
		m.status = "no remembered username"
		return cmdClearStatus()
	}

	return func() tea.Msg {
		if err != nil {
			return copiedMsg{err: err}
		}
		if err := clipboard.WriteAll(username); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{username: username}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusDelay, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// CapturesText reports whether key presses are typed into a text input.
func (m *RegisterModel) CapturesText() bool {
	return m.focus < len(m.inputs)
}

func (m *RegisterModel) View() string {
	var b strings.Builder

	for i, id := range models.Fields {
		b.WriteString(padRight(fieldLabels[id], labelWidth))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("] ")
		b.WriteString(marker(m.validity[id]))
		b.WriteString("\n")

		if id == models.FieldPassword {
			if strength := m.texts[models.SlotPasswordStrength]; strength != "" {
				b.WriteString(padRight("", labelWidth))
				b.WriteString("│ strength: ")
				b.WriteString(strength)
				b.WriteString("\n")
			}
		}
		if msg := m.texts[id.ErrorSlot()]; msg != "" {
			b.WriteString(padRight("", labelWidth))
			b.WriteString("│ ")
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	check := "[ ]"
	if m.rememberMe {
		check = "[x]"
	}
	b.WriteString("\n")
	b.WriteString(m.focused(focusRememberMe, check+" Remember me"))
	b.WriteString("\n")
	if notice := m.texts[models.SlotCookieMessage]; notice != "" {
		b.WriteString(errorStyle.Render(notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.focused(focusSubmit, "[ Register ]"))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	body := strings.TrimRight(b.String(), "\n")
	if m.overlay.visible() {
		body += "\n\n" + m.overlay.View()
	}

	return renderPage("REGISTRATION", body, "tab/shift+tab: move │ space: remember me │ enter: register │ ctrl+y: copy remembered │ v: version")
}

func (m *RegisterModel) focused(pos int, s string) string {
	if m.focus == pos {
		return focusedStyle.Render(s)
	}
	return s
}

func marker(v models.Validity) string {
	switch v {
	case models.ValidityValid:
		return validStyle.Render("✓")
	case models.ValidityInvalid:
		return invalidStyle.Render("✗")
	default:
		return " "
	}
}

func (m *RegisterModel) Value(id models.FieldID) string {
	if i := fieldIndex(id); i >= 0 {
		return m.inputs[i].Value()
	}
	return ""
}

func (m *RegisterModel) SetValue(id models.FieldID, value string) {
	if i := fieldIndex(id); i >= 0 {
		m.inputs[i].SetValue(value)
	}
}

func (m *RegisterModel) RememberMe() bool {
	return m.rememberMe
}

func (m *RegisterModel) SetValidity(id models.FieldID, v models.Validity) {
	if v == models.ValidityUnset {
		delete(m.validity, id)
		return
	}
	m.validity[id] = v
}

func (m *RegisterModel) SetText(slot, text string) {
	m.texts[slot] = text
}

func (m *RegisterModel) InvalidCount() int {
	n := 0
	for _, v := range m.validity {
		if v == models.ValidityInvalid {
			n++
		}
	}
	return n
}

// Acknowledge opens the modal box; it stays until enter or esc.
func (m *RegisterModel) Acknowledge(message string) {
	m.overlay.message = message
}

// Reset clears the form. The cookie notice stays visible.
func (m *RegisterModel) Reset() {
	for i, id := range models.Fields {
		m.inputs[i].Reset()
		delete(m.texts, id.ErrorSlot())
	}
	clear(m.validity)
	delete(m.texts, models.SlotPasswordStrength)
	m.rememberMe = false
}

func fieldIndex(id models.FieldID) int {
	for i, f := range models.Fields {
		if f == id {
			return i
		}
	}
	return -1
}
