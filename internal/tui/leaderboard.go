package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/models"
)

// leaderboardLimit keeps the screen to one page of rows.
const leaderboardLimit = 25

// roleFilters cycles All -> Athlete -> Coach -> Sponsor.
var roleFilters = []models.Role{"", models.RoleAthlete, models.RoleCoach, models.RoleSponsor}

type leaderboardState struct {
	entries []models.LeaderboardEntry
	roleIdx int
	cursor  int
	loading bool
	errMsg  string
}

func cmdLoadLeaderboard(ctx context.Context, svc service.ClientLeaderboardService, filter models.LeaderboardFilter) tea.Cmd {
	return func() tea.Msg {
		entries, err := svc.Leaderboard(ctx, filter)
		return leaderboardLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) openLeaderboard() (tea.Model, tea.Cmd) {
	m.screen = screenLeaderboard
	m.leaderboard = leaderboardState{loading: true}
	return m, cmdLoadLeaderboard(m.ctx, m.services.LeaderboardService, m.leaderboardFilter())
}

func (m appModel) leaderboardFilter() models.LeaderboardFilter {
	return models.LeaderboardFilter{
		Role:  roleFilters[m.leaderboard.roleIdx],
		Limit: leaderboardLimit,
	}
}

func (m appModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenHome
		return m, nil

	case key.Matches(keyMsg, keys.up):
		if m.leaderboard.cursor > 0 {
			m.leaderboard.cursor--
		}

	case key.Matches(keyMsg, keys.down):
		if m.leaderboard.cursor < len(m.leaderboard.entries)-1 {
			m.leaderboard.cursor++
		}

	case keyMsg.String() == "f":
		m.leaderboard.roleIdx = (m.leaderboard.roleIdx + 1) % len(roleFilters)
		m.leaderboard.cursor = 0
		m.leaderboard.loading = true
		m.leaderboard.errMsg = ""
		return m, cmdLoadLeaderboard(m.ctx, m.services.LeaderboardService, m.leaderboardFilter())

	case key.Matches(keyMsg, keys.refresh):
		m.leaderboard.loading = true
		m.leaderboard.errMsg = ""
		return m, cmdLoadLeaderboard(m.ctx, m.services.LeaderboardService, m.leaderboardFilter())
	}
	return m, nil
}

func (m appModel) onLeaderboardLoaded(msg leaderboardLoadedMsg) (tea.Model, tea.Cmd) {
	m.leaderboard.loading = false
	if msg.err != nil {
		m.leaderboard.errMsg = errorText(msg.err)
		return m, nil
	}
	m.leaderboard.entries = msg.entries
	if m.leaderboard.cursor >= len(msg.entries) {
		m.leaderboard.cursor = 0
	}
	return m, nil
}

func (m appModel) viewLeaderboard() string {
	var b strings.Builder

	for i, role := range roleFilters {
		label := "All"
		if role != "" {
			label = string(role)
		}
		chip := tabStyle.Render(label)
		if i == m.leaderboard.roleIdx {
			chip = activeTabStyle.Render(label)
		}
		b.WriteString(chip)
	}
	b.WriteString("\n\n")

	switch {
	case m.leaderboard.loading:
		b.WriteString(dimStyle.Render("Loading…") + "\n")
	case m.leaderboard.errMsg != "":
		b.WriteString(errorStyle.Render(m.leaderboard.errMsg) + "\n")
	case len(m.leaderboard.entries) == 0:
		b.WriteString(dimStyle.Render("No one on the board yet.") + "\n")
	default:
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %4s  %-20s  %-8s  %-14s  %6s", "#", "Name", "Role", "Sport", "Score")) + "\n")
		for i, e := range m.leaderboard.entries {
			row := fmt.Sprintf("  %4d  %-20s  %-8s  %-14s  %6d",
				e.Rank, fitText(e.Name, 20), e.Role, fitText(e.Sport, 14), e.TotalScore)
			if i == m.leaderboard.cursor {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row + "\n")
		}
	}

	return renderPage("Leaderboard", b.String(), "f filter role · r refresh · ↑/↓ move · esc back")
}
