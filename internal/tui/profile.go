package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/models"
)

type profileState struct {
	user    models.User
	loading bool
	errMsg  string
	status  string
}

func cmdLoadProfile(ctx context.Context, svc service.ClientProfileService) tea.Cmd {
	return func() tea.Msg {
		user, err := svc.Me(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

// cmdCopyToClipboard puts the session token on the system clipboard so a
// user can take it to curl or another client.
func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m appModel) openProfile() (tea.Model, tea.Cmd) {
	m.screen = screenProfile
	m.profile = profileState{loading: true}
	return m, cmdLoadProfile(m.ctx, m.services.ProfileService)
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenHome
		return m, nil

	case key.Matches(keyMsg, keys.refresh):
		m.profile.loading = true
		m.profile.errMsg = ""
		return m, cmdLoadProfile(m.ctx, m.services.ProfileService)

	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.session.Token)

	case key.Matches(keyMsg, keys.edit):
		if m.profile.loading {
			return m, nil
		}
		m.profileEdit = newProfileEditState(m.profile.user)
		m.screen = screenProfileEdit
		return m, m.profileEdit.inputs[0].Focus()
	}
	return m, nil
}

func (m appModel) onProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	m.profile.loading = false
	if msg.err != nil {
		m.profile.errMsg = errorText(msg.err)
		return m, nil
	}
	m.profile.user = msg.user
	m.session.User = msg.user
	return m, nil
}

func (m appModel) onCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.profile.status = "Could not access the clipboard."
	} else {
		m.profile.status = "Access token copied to clipboard."
	}
	return m, cmdClearStatus()
}

func (m appModel) viewProfile() string {
	var b strings.Builder
	switch {
	case m.profile.loading:
		b.WriteString(dimStyle.Render("Loading…") + "\n")
	case m.profile.errMsg != "":
		b.WriteString(errorStyle.Render(m.profile.errMsg) + "\n")
	default:
		u := m.profile.user
		b.WriteString(labelStyle.Render("Name:          ") + valueOrDash(u.Name) + "\n")
		b.WriteString(labelStyle.Render("Email:         ") + valueOrDash(u.Email) + "\n")
		b.WriteString(labelStyle.Render("Role:          ") + valueOrDash(string(u.Role)) + "\n")
		b.WriteString(labelStyle.Render("Sport:         ") + valueOrDash(u.Sport) + "\n")
		b.WriteString(labelStyle.Render("Location:      ") + valueOrDash(u.Location) + "\n")
		b.WriteString(labelStyle.Render("Picture:       ") + valueOrDash(fitText(u.ProfilePictureURL, 48)) + "\n")
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("District rank: ") + fmt.Sprintf("%d", u.DistrictRank) + "\n")
		b.WriteString(labelStyle.Render("State rank:    ") + fmt.Sprintf("%d", u.StateRank) + "\n")
		b.WriteString(labelStyle.Render("Total score:   ") + fmt.Sprintf("%d", u.TotalScore) + "\n")
	}
	if m.profile.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.profile.status) + "\n")
	}
	return renderPage("My profile", b.String(), "e edit · c copy token · r refresh · esc back")
}
