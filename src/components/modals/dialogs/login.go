// login.go - LoginModal is the sign-in / registration screen shown while no token is held.

package dialogs

import (
	"errors"
	"strings"

	"docchat/src/components/modals"
	"docchat/src/models"
	"docchat/src/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
	"github.com/go-playground/validator/v10"
)

// Credentials is what the form collects.
type Credentials struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=4,max=128"`
}

// AuthFunc starts a login or registration. register is true in sign-up mode.
type AuthFunc func(c Credentials, register bool) tea.Cmd

var credentialsValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateCredentials returns a *models.ValidationError with a user-facing
// message for the first invalid field, or nil.
func ValidateCredentials(c Credentials) error {
	err := credentialsValidator.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &models.ValidationError{Message: "Invalid credentials."}
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	verr := &models.ValidationError{Field: field}
	switch fe.Tag() {
	case "required":
		verr.Message = "Please enter a " + field + "."
	case "min":
		verr.Message = "The " + field + " must be at least " + fe.Param() + " characters."
	case "max":
		verr.Message = "The " + field + " must be at most " + fe.Param() + " characters."
	default:
		verr.Message = "Invalid " + field + "."
	}
	return verr
}

// LoginModal is the authentication form.
type LoginModal struct {
	modals.BaseModal
	username textinput.Model
	password textinput.Model
	focus    int
	register bool
	busy     bool
	errText  string
	info     string
	onAuth   AuthFunc
	pending  tea.Cmd
	banner   string
}

func NewLoginModal(onAuth AuthFunc) *LoginModal {
	user := textinput.New()
	user.Placeholder = "username"
	user.Prompt = "User: "
	user.CharLimit = 64
	user.Width = 32
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.Prompt = "Pass: "
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 128
	pass.Width = 32

	return &LoginModal{
		username: user,
		password: pass,
		onAuth:   onAuth,
		banner:   figure.NewFigure("DOC CHAT", "", true).String(),
	}
}

// Registering reports whether the form is in sign-up mode.
func (m *LoginModal) Registering() bool { return m.register }

// Busy reports whether a request is outstanding.
func (m *LoginModal) Busy() bool { return m.busy }

// Fail shows an error after a rejected attempt and re-enables the form.
func (m *LoginModal) Fail(text string) {
	m.busy = false
	m.errText = text
	m.info = ""
}

// Reset clears the password and any message, keeping the username.
func (m *LoginModal) Reset() {
	m.busy = false
	m.errText = ""
	m.info = ""
	m.password.SetValue("")
}

func (m *LoginModal) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.pending = nil
		if types.Dispatch(m.GetControlSets(), key.String()) {
			return m, m.pending
		}
		if m.busy {
			return m, nil
		}
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *LoginModal) submit() {
	if m.busy {
		return
	}
	c := Credentials{Username: strings.TrimSpace(m.username.Value()), Password: m.password.Value()}
	var verr *models.ValidationError
	if err := ValidateCredentials(c); errors.As(err, &verr) {
		m.errText = verr.Message
		return
	}
	m.errText = ""
	m.busy = true
	if m.register {
		m.info = "Creating account..."
	} else {
		m.info = "Signing in..."
	}
	m.pending = m.onAuth(c, m.register)
}

func (m *LoginModal) toggleFocus() {
	m.focus = 1 - m.focus
	if m.focus == 0 {
		m.password.Blur()
		m.username.Focus()
	} else {
		m.username.Blur()
		m.password.Focus()
	}
}

func (m *LoginModal) View() string {
	title := "Sign in"
	switchHint := "Ctrl+R create an account"
	if m.register {
		title = "Create an account"
		switchHint = "Ctrl+R back to sign in"
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(title) + "\n\n")
	b.WriteString(m.username.View() + "\n")
	b.WriteString(m.password.View() + "\n")
	if m.errText != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.errText))
	} else if m.info != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(m.info))
	}
	hints := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("Tab switch field • Enter submit • " + switchHint + " • Ctrl+C quit")

	banner := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(m.banner)
	layout := lipgloss.JoinVertical(lipgloss.Center, banner, modals.BoxStyle.Render(b.String()), hints)
	return m.Place(layout)
}

func (m *LoginModal) GetControlSets() []types.ControlSet {
	return []types.ControlSet{{Controls: []types.ControlType{
		{Name: "switch field", Key: "tab", Action: func() bool { m.toggleFocus(); return true }},
		{Name: "", Key: "shift+tab", Action: func() bool { m.toggleFocus(); return true }},
		{Name: "", Key: "up", Action: func() bool { m.toggleFocus(); return true }},
		{Name: "", Key: "down", Action: func() bool { m.toggleFocus(); return true }},
		{Name: "submit", Key: "enter", Action: func() bool {
			if m.focus == 0 && m.password.Value() == "" {
				m.toggleFocus()
				return true
			}
			m.submit()
			return true
		}},
		{Name: "sign in / register", Key: "ctrl+r", Action: func() bool {
			if m.busy {
				return true
			}
			m.register = !m.register
			m.errText = ""
			m.info = ""
			return true
		}},
	}}}
}

func (m *LoginModal) ViewType() types.ViewType { return types.LoginStateType }
