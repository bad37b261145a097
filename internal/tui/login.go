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

type loginState struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 72
	password.Width = 40

	return loginState{inputs: []textinput.Model{email, password}}
}

// cmdLogin authenticates in the background and reports back with a
// loginDoneMsg.
func cmdLogin(ctx context.Context, svc service.ClientAuthService, req models.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		session, err := svc.Login(ctx, req)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateLoginInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenWelcome
		return m, nil

	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
		return m.focusLoginField(m.login.focus + 1)

	case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
		return m.focusLoginField(m.login.focus - 1)

	case key.Matches(keyMsg, keys.enter):
		if m.login.submitting {
			return m, nil
		}
		if m.login.focus < len(m.login.inputs)-1 {
			return m.focusLoginField(m.login.focus + 1)
		}
		req := models.LoginRequest{
			Email:    strings.TrimSpace(m.login.inputs[0].Value()),
			Password: m.login.inputs[1].Value(),
		}
		m.login.submitting = true
		m.login.errMsg = ""
		return m, cmdLogin(m.ctx, m.services.AuthService, req)
	}

	return m.updateLoginInputs(msg)
}

func (m appModel) focusLoginField(focus int) (tea.Model, tea.Cmd) {
	n := len(m.login.inputs)
	m.login.focus = ((focus % n) + n) % n
	cmds := make([]tea.Cmd, 0, n)
	for i := range m.login.inputs {
		if i == m.login.focus {
			cmds = append(cmds, m.login.inputs[i].Focus())
			continue
		}
		m.login.inputs[i].Blur()
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateLoginInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.login.inputs))
	for i := range m.login.inputs {
		m.login.inputs[i], cmds[i] = m.login.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) onLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		m.login.errMsg = errorText(msg.err)
		return m, nil
	}
	m.session = msg.session
	m.home = newHomeState()
	m.screen = screenHome
	return m, nil
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	if m.login.status != "" {
		b.WriteString(statusStyle.Render(m.login.status) + "\n\n")
	}
	b.WriteString(formLine("Email:   ", m.login.inputs[0].View(), m.login.focus == 0) + "\n")
	b.WriteString(formLine("Password:", m.login.inputs[1].View(), m.login.focus == 1) + "\n")
	if m.login.submitting {
		b.WriteString("\n" + dimStyle.Render("Signing in…") + "\n")
	}
	if m.login.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.login.errMsg) + "\n")
	}
	return renderPage("Sign in", b.String(), "enter submit · tab next field · esc back")
}
