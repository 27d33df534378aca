package dialogs

import (
	"testing"

	"docchat/src/components/modals"
	"docchat/src/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewConfirmationModalRejectsOptionCount(t *testing.T) {
	_, err := NewConfirmationModal("?", nil, nil)
	assert.Error(t, err)

	opts := make([]modals.ModalOption, 4)
	_, err = NewConfirmationModal("?", opts, nil)
	assert.Error(t, err)
}

func TestYesNoDefaultsToNo(t *testing.T) {
	closed, confirmed := 0, false
	m := YesNo("Clear the conversation?", func() tea.Cmd { confirmed = true; return nil }, func() { closed++ })

	m.Update(key("enter"))

	assert.False(t, confirmed)
	assert.Equal(t, 1, closed)
}

func TestConfirmationSelectsWithArrows(t *testing.T) {
	confirmed := false
	m := YesNo("Quit?", func() tea.Cmd { confirmed = true; return tea.Quit }, func() {})

	m.Update(key("left"))
	_, cmd := m.Update(key("enter"))

	assert.True(t, confirmed)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Quit?")
}

func TestConfirmationEscCloses(t *testing.T) {
	closed := false
	m := YesNo("?", nil, func() { closed = true })

	m.Update(key("esc"))

	assert.True(t, closed)
}

func TestMenuModalSkipsDisabledEntries(t *testing.T) {
	var picked string
	pick := func(s string) func() tea.Cmd { return func() tea.Cmd { picked = s; return nil } }
	m := NewMenuModal("Actions", []MenuEntry{
		{ModalOption: modals.ModalOption{Label: "Upload", OnSelect: pick("upload")}},
		{ModalOption: modals.ModalOption{Label: "Copy", OnSelect: pick("copy")}, Disabled: true},
		{ModalOption: modals.ModalOption{Label: "Help", OnSelect: pick("help")}},
	}, func() {})

	m.Update(key("down"))
	m.Update(key("enter"))
	assert.Empty(t, picked)

	m.Update(key("down"))
	m.Update(key("enter"))
	assert.Equal(t, "help", picked)

	m.Update(key("down"))
	assert.Equal(t, 0, m.Selected)
}

func TestPromptModalKeepsOpenOnError(t *testing.T) {
	closed := false
	var got string
	m := NewPromptModal("Path", "", func(v string) (tea.Cmd, string) {
		if v == "bad" {
			return nil, "No such file."
		}
		got = v
		return nil, ""
	}, func() { closed = true })

	m.SetValue("bad")
	m.Update(key("enter"))
	assert.False(t, closed)
	assert.Equal(t, "No such file.", m.Err())
	assert.Contains(t, m.View(), "No such file.")

	m.SetValue("  report.pdf ")
	m.Update(key("enter"))
	assert.True(t, closed)
	assert.Equal(t, "report.pdf", got)
}

func TestPromptModalIgnoresBlank(t *testing.T) {
	called := false
	m := NewPromptModal("Path", "", func(string) (tea.Cmd, string) { called = true; return nil, "" }, nil)

	m.Update(key("enter"))

	assert.False(t, called)
}

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, ValidateCredentials(Credentials{Username: "alice", Password: "secret"}))

	cases := []struct {
		creds Credentials
		field string
		want  string
	}{
		{Credentials{Password: "secret"}, "username", "Please enter a username."},
		{Credentials{Username: "alice", Password: "abc"}, "password", "The password must be at least 4 characters."},
		{Credentials{Username: "al", Password: "secret"}, "username", "The username must be at least 3 characters."},
	}
	for _, tc := range cases {
		var verr *models.ValidationError
		require.ErrorAs(t, ValidateCredentials(tc.creds), &verr)
		assert.Equal(t, tc.field, verr.Field)
		assert.Equal(t, tc.want, verr.Message)
	}
}

func TestLoginModalSubmitsAndTogglesMode(t *testing.T) {
	var got Credentials
	var registering bool
	m := NewLoginModal(func(c Credentials, register bool) tea.Cmd {
		got, registering = c, register
		return func() tea.Msg { return nil }
	})

	for _, r := range "alice" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(key("enter")) // empty password moves focus
	for _, r := range "secret" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(key("ctrl+r"))
	_, cmd := m.Update(key("enter"))

	require.NotNil(t, cmd)
	assert.True(t, registering)
	assert.Equal(t, Credentials{Username: "alice", Password: "secret"}, got)
	assert.True(t, m.Busy())
	assert.Contains(t, m.View(), "Create an account")

	m.Fail("Login failed. Check your username and password.")
	assert.False(t, m.Busy())
	assert.Contains(t, m.View(), "Login failed")
}

func TestLoginModalShowsValidationError(t *testing.T) {
	called := false
	m := NewLoginModal(func(Credentials, bool) tea.Cmd { called = true; return nil })
	m.toggleFocus()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pw")})

	m.Update(key("enter"))

	assert.False(t, called)
	assert.Contains(t, m.View(), "Please enter a username.")
}
