package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/models"
)

const (
	regFieldName = iota
	regFieldEmail
	regFieldPassword
	regFieldRole
	regFieldSport
	regFieldLocation
	regFieldPicture
	regFieldCount
)

var registerRoles = []models.Role{models.RoleAthlete, models.RoleCoach, models.RoleSponsor}

type registerState struct {
	inputs     []textinput.Model
	roleIdx    int
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterState() registerState {
	mk := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		return in
	}

	password := mk("password", 72)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return registerState{
		inputs: []textinput.Model{
			mk("full name", 120),
			mk("you@example.com", 254),
			password,
			mk("e.g. Kabaddi", 60),
			mk("district, state", 120),
			mk("profile picture URL (optional)", 2048),
		},
	}
}

// inputIdx maps a form row to its text input. The role row has no input.
func (s registerState) inputIdx(field int) int {
	if field < regFieldRole {
		return field
	}
	return field - 1
}

func cmdRegister(ctx context.Context, svc service.ClientAuthService, req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := svc.Register(ctx, req)
		return registerDoneMsg{response: resp, err: err}
	}
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateRegisterInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenWelcome
		return m, nil

	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
		return m.focusRegisterField(m.register.focus + 1)

	case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
		return m.focusRegisterField(m.register.focus - 1)

	case keyMsg.String() == "left", keyMsg.String() == "right":
		if m.register.focus == regFieldRole {
			n := len(registerRoles)
			if keyMsg.String() == "left" {
				m.register.roleIdx = (m.register.roleIdx + n - 1) % n
			} else {
				m.register.roleIdx = (m.register.roleIdx + 1) % n
			}
			return m, nil
		}

	case key.Matches(keyMsg, keys.enter):
		if m.register.submitting {
			return m, nil
		}
		if m.register.focus < regFieldCount-1 {
			return m.focusRegisterField(m.register.focus + 1)
		}
		req := models.RegisterRequest{
			Name:              strings.TrimSpace(m.register.inputs[0].Value()),
			Email:             strings.TrimSpace(m.register.inputs[1].Value()),
			Password:          m.register.inputs[2].Value(),
			Role:              registerRoles[m.register.roleIdx],
			Sport:             strings.TrimSpace(m.register.inputs[3].Value()),
			Location:          strings.TrimSpace(m.register.inputs[4].Value()),
			ProfilePictureURL: strings.TrimSpace(m.register.inputs[5].Value()),
		}
		m.register.submitting = true
		m.register.errMsg = ""
		return m, cmdRegister(m.ctx, m.services.AuthService, req)
	}

	return m.updateRegisterInputs(msg)
}

func (m appModel) focusRegisterField(focus int) (tea.Model, tea.Cmd) {
	m.register.focus = ((focus % regFieldCount) + regFieldCount) % regFieldCount
	cmds := make([]tea.Cmd, 0, len(m.register.inputs))
	for i := range m.register.inputs {
		m.register.inputs[i].Blur()
	}
	if m.register.focus != regFieldRole {
		cmds = append(cmds, m.register.inputs[m.register.inputIdx(m.register.focus)].Focus())
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateRegisterInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.register.inputs))
	for i := range m.register.inputs {
		m.register.inputs[i], cmds[i] = m.register.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) onRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	m.register.submitting = false
	if msg.err != nil {
		m.register.errMsg = errorText(msg.err)
		return m, nil
	}
	// Registration does not log the user in; send them to the sign-in
	// form with the account's email prefilled.
	m.login = newLoginState()
	m.login.inputs[0].SetValue(strings.TrimSpace(m.register.inputs[1].Value()))
	m.login.status = msg.response.Message
	m.screen = screenLogin
	model, cmd := m.focusLoginField(1)
	return model, cmd
}

func (m appModel) viewRegister() string {
	roleView := ""
	for i, role := range registerRoles {
		chip := tabStyle.Render(string(role))
		if i == m.register.roleIdx {
			chip = activeTabStyle.Render(string(role))
		}
		roleView += chip
	}

	var b strings.Builder
	b.WriteString(formLine("Name:    ", m.register.inputs[0].View(), m.register.focus == regFieldName) + "\n")
	b.WriteString(formLine("Email:   ", m.register.inputs[1].View(), m.register.focus == regFieldEmail) + "\n")
	b.WriteString(formLine("Password:", m.register.inputs[2].View(), m.register.focus == regFieldPassword) + "\n")
	b.WriteString(formLine("I am a:  ", roleView, m.register.focus == regFieldRole) + "\n")
	b.WriteString(formLine("Sport:   ", m.register.inputs[3].View(), m.register.focus == regFieldSport) + "\n")
	b.WriteString(formLine("Location:", m.register.inputs[4].View(), m.register.focus == regFieldLocation) + "\n")
	b.WriteString(formLine("Picture: ", m.register.inputs[5].View(), m.register.focus == regFieldPicture) + "\n")
	if m.register.submitting {
		b.WriteString("\n" + dimStyle.Render("Creating account…") + "\n")
	}
	if m.register.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.register.errMsg) + "\n")
	}
	return renderPage("Create an account", b.String(), "enter submit · tab next field · ←/→ pick role · esc back")
}
