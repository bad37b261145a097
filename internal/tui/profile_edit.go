package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/models"
)

type profileEditState struct {
	inputs []textinput.Model
	focus  int
	saving bool
	errMsg string
}

// newProfileEditState prefills the form with the current profile values.
// Role and ranking stats are server-owned and not editable here.
func newProfileEditState(user models.User) profileEditState {
	mk := func(value, placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.SetValue(value)
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 48
		return in
	}
	return profileEditState{
		inputs: []textinput.Model{
			mk(user.Name, "full name", 120),
			mk(user.Sport, "sport", 60),
			mk(user.Location, "district, state", 120),
			mk(user.ProfilePictureURL, "profile picture URL", 2048),
		},
	}
}

func cmdSaveProfile(ctx context.Context, svc service.ClientProfileService, update models.UpdateProfileRequest) tea.Cmd {
	return func() tea.Msg {
		user, err := svc.UpdateProfile(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m appModel) updateProfileEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateProfileEditInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenProfile
		return m, nil

	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
		return m.focusProfileEditField(m.profileEdit.focus + 1)

	case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
		return m.focusProfileEditField(m.profileEdit.focus - 1)

	case key.Matches(keyMsg, keys.enter):
		if m.profileEdit.saving {
			return m, nil
		}
		if m.profileEdit.focus < len(m.profileEdit.inputs)-1 {
			return m.focusProfileEditField(m.profileEdit.focus + 1)
		}
		update := m.profileEditRequest()
		m.profileEdit.saving = true
		m.profileEdit.errMsg = ""
		return m, cmdSaveProfile(m.ctx, m.services.ProfileService, update)
	}

	return m.updateProfileEditInputs(msg)
}

// profileEditRequest sends only the fields that differ from the loaded
// profile, leaving the rest untouched on the server.
func (m appModel) profileEditRequest() models.UpdateProfileRequest {
	current := m.profile.user
	var update models.UpdateProfileRequest
	if v := strings.TrimSpace(m.profileEdit.inputs[0].Value()); v != current.Name {
		update.Name = &v
	}
	if v := strings.TrimSpace(m.profileEdit.inputs[1].Value()); v != current.Sport {
		update.Sport = &v
	}
	if v := strings.TrimSpace(m.profileEdit.inputs[2].Value()); v != current.Location {
		update.Location = &v
	}
	if v := strings.TrimSpace(m.profileEdit.inputs[3].Value()); v != current.ProfilePictureURL {
		update.ProfilePictureURL = &v
	}
	return update
}

func (m appModel) focusProfileEditField(focus int) (tea.Model, tea.Cmd) {
	n := len(m.profileEdit.inputs)
	m.profileEdit.focus = ((focus % n) + n) % n
	cmds := make([]tea.Cmd, 0, n)
	for i := range m.profileEdit.inputs {
		if i == m.profileEdit.focus {
			cmds = append(cmds, m.profileEdit.inputs[i].Focus())
			continue
		}
		m.profileEdit.inputs[i].Blur()
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateProfileEditInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.profileEdit.inputs))
	for i := range m.profileEdit.inputs {
		m.profileEdit.inputs[i], cmds[i] = m.profileEdit.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) onProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	m.profileEdit.saving = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrInvalidDataProvided) {
			// Nothing differed from the stored profile; treat as done.
			m.screen = screenProfile
			return m, nil
		}
		m.profileEdit.errMsg = errorText(msg.err)
		return m, nil
	}
	m.profile.user = msg.user
	m.session.User = msg.user
	m.profile.status = "Profile saved."
	m.screen = screenProfile
	return m, cmdClearStatus()
}

func (m appModel) viewProfileEdit() string {
	var b strings.Builder
	b.WriteString(formLine("Name:    ", m.profileEdit.inputs[0].View(), m.profileEdit.focus == 0) + "\n")
	b.WriteString(formLine("Sport:   ", m.profileEdit.inputs[1].View(), m.profileEdit.focus == 1) + "\n")
	b.WriteString(formLine("Location:", m.profileEdit.inputs[2].View(), m.profileEdit.focus == 2) + "\n")
	b.WriteString(formLine("Picture: ", m.profileEdit.inputs[3].View(), m.profileEdit.focus == 3) + "\n")
	if m.profileEdit.saving {
		b.WriteString("\n" + dimStyle.Render("Saving…") + "\n")
	}
	if m.profileEdit.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.profileEdit.errMsg) + "\n")
	}
	return renderPage("Edit profile", b.String(), "enter save · tab next field · esc cancel")
}
