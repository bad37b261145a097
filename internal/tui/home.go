package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

var homeChoices = []string{"Leaderboard", "Messages", "My profile", "Log out"}

type homeState struct {
	cursor int
}

func newHomeState() homeState {
	return homeState{}
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.cursor > 0 {
			m.home.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.cursor < len(homeChoices)-1 {
			m.home.cursor++
		}
	case key.Matches(keyMsg, keys.nav1):
		return m.openLeaderboard()
	case key.Matches(keyMsg, keys.nav2):
		return m.openMessages()
	case key.Matches(keyMsg, keys.nav3):
		return m.openProfile()
	case key.Matches(keyMsg, keys.nav4):
		return m.logout()
	case key.Matches(keyMsg, keys.enter):
		switch m.home.cursor {
		case 0:
			return m.openLeaderboard()
		case 1:
			return m.openMessages()
		case 2:
			return m.openProfile()
		case 3:
			return m.logout()
		}
	}
	return m, nil
}

func (m appModel) viewHome() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Welcome back, %s.\n", m.session.User.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s · %s · %s",
		m.session.User.Role, m.session.User.Sport, m.session.User.Location)) + "\n\n")
	for i, choice := range homeChoices {
		line := fmt.Sprintf("  %d. %s", i+1, choice)
		if i == m.home.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %d. %s", i+1, choice))
		}
		b.WriteString(line + "\n")
	}
	return renderPage("Home", b.String(), "↑/↓ select · enter open · 1-4 jump · ctrl+c quit")
}
