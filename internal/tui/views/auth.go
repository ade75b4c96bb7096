// Package views provides TUI view components for the HireMind client.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"github.com/prajaltale/HireMind/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// AuthMode selects which auth flow a submission targets.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeRegister
	ModeGoogle
)

// SubmitAuthMsg is sent when the user submits valid credentials.
type SubmitAuthMsg struct {
	Mode     AuthMode
	Email    string
	Password string
	Name     string
}

// ============================================================================
// AuthModel
// ============================================================================

// maxAuthWidth is the maximum width for the auth box.
const maxAuthWidth = 70

// loginForm mirrors the local validation the web client performs before any
// network call. Name is validated separately because it is only required
// when registering.
type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

var validate = validator.New()

// AuthModel is the view model for the sign-in screen. It owns three inputs
// but shows only the ones the active mode needs: login (email+password),
// register (+name), google (email only, demo SSO).
type AuthModel struct {
	mode    AuthMode
	email   textinput.Model
	pass    textinput.Model
	name    textinput.Model
	focused int
	errText string
	busy    bool
	width   int
	height  int
}

// NewAuthModel creates the sign-in view in login mode.
func NewAuthModel(width, height int) AuthModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.EchoMode = textinput.EchoPassword
	pass.CharLimit = 128
	pass.Width = 40

	name := textinput.New()
	name.Placeholder = "full name"
	name.CharLimit = 100
	name.Width = 40

	return AuthModel{
		mode:   ModeLogin,
		email:  email,
		pass:   pass,
		name:   name,
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the auth view.
func (m AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetBusy disables submission for the duration of one auth request.
func (m *AuthModel) SetBusy(busy bool) {
	m.busy = busy
}

// SetError shows an inline error (server detail or validation failure).
func (m *AuthModel) SetError(text string) {
	m.errText = text
}

// fields returns the visible inputs for the active mode, in focus order.
func (m *AuthModel) fields() []*textinput.Model {
	switch m.mode {
	case ModeRegister:
		return []*textinput.Model{&m.name, &m.email, &m.pass}
	case ModeGoogle:
		return []*textinput.Model{&m.email}
	default:
		return []*textinput.Model{&m.email, &m.pass}
	}
}

func (m *AuthModel) focusField(i int) tea.Cmd {
	fields := m.fields()
	if i < 0 {
		i = len(fields) - 1
	}
	if i >= len(fields) {
		i = 0
	}
	m.focused = i
	for j, f := range fields {
		if j == i {
			f.Focus()
		} else {
			f.Blur()
		}
	}
	return textinput.Blink
}

// cycleMode advances login -> register -> google -> login. Switching modes
// resets the error state, mirroring how the mode toggle resets the
// required-field handling.
func (m *AuthModel) cycleMode() tea.Cmd {
	m.mode = (m.mode + 1) % 3
	m.errText = ""
	return m.focusField(0)
}

// submit validates locally and either surfaces a blocking error or emits
// SubmitAuthMsg. No request leaves before validation passes.
func (m *AuthModel) submit() tea.Cmd {
	email := strings.TrimSpace(m.email.Value())
	password := m.pass.Value()
	name := strings.TrimSpace(m.name.Value())

	switch m.mode {
	case ModeGoogle:
		if email == "" {
			m.errText = "Please enter your email."
			return nil
		}
	default:
		if err := validate.Struct(loginForm{Email: email, Password: password}); err != nil {
			m.errText = "Please fill all required fields."
			return nil
		}
		if m.mode == ModeRegister && name == "" {
			m.errText = "Please fill all required fields."
			return nil
		}
	}

	m.errText = ""
	mode := m.mode
	return func() tea.Msg {
		return SubmitAuthMsg{Mode: mode, Email: email, Password: password, Name: name}
	}
}

// Update handles messages for the auth view.
func (m AuthModel) Update(msg tea.Msg) (AuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyTab:
			return m, m.cycleMode()
		case tui.KeyUp:
			return m, m.focusField(m.focused - 1)
		case tui.KeyDown:
			return m, m.focusField(m.focused + 1)
		case tui.KeyEnter:
			if m.focused < len(m.fields())-1 {
				return m, m.focusField(m.focused + 1)
			}
			return m, m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	fields := m.fields()
	if m.focused < len(fields) {
		*fields[m.focused], cmd = fields[m.focused].Update(msg)
	}
	return m, cmd
}

// View renders the auth view.
func (m AuthModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("HireMind"))
	b.WriteString("\n\n")

	// Mode tabs
	labels := []string{"Sign in", "Create account", "Google (demo)"}
	var tabs []string
	for i, label := range labels {
		if AuthMode(i) == m.mode {
			tabs = append(tabs, tui.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, tui.InactiveTabStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if m.mode == ModeGoogle {
		b.WriteString(tui.DimStyle.Render("Demo Google sign-in: enter your email, no real verification is performed."))
		b.WriteString("\n\n")
	}

	for _, f := range m.fields() {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.busy {
		b.WriteString(tui.DimStyle.Render("Signing in..."))
		b.WriteString("\n")
	} else if m.errText != "" {
		b.WriteString(tui.ErrorStyle.Render(tui.Sanitize(m.errText)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Tab: switch mode · ↑↓: fields · Enter: submit · Ctrl+C: exit"))

	boxWidth := maxAuthWidth
	if m.width-4 < boxWidth {
		boxWidth = m.width - 4
	}
	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}
