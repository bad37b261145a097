package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

var welcomeChoices = []string{"Sign in", "Create an account"}

type welcomeState struct {
	cursor int
}

func newWelcomeState() welcomeState {
	return welcomeState{}
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.cursor > 0 {
			m.welcome.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.cursor < len(welcomeChoices)-1 {
			m.welcome.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.cursor == 0 {
			m.login = newLoginState()
			m.screen = screenLogin
			return m, m.login.inputs[0].Focus()
		}
		m.register = newRegisterState()
		m.screen = screenRegister
		return m, m.register.inputs[0].Focus()
	}
	return m, nil
}

func (m appModel) viewWelcome() string {
	var b strings.Builder
	b.WriteString("Find talent. Get discovered.\n\n")
	for i, choice := range welcomeChoices {
		line := "  " + choice
		if i == m.welcome.cursor {
			line = selectedStyle.Render("> " + choice)
		}
		b.WriteString(line + "\n")
	}
	return renderPage("Welcome", b.String(), "↑/↓ select · enter confirm · ctrl+c quit")
}
