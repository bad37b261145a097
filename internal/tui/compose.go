package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sparkkhoj/spark-khoj/models"
)

// composeState starts a conversation with someone not in the inbox yet.
// The recipient is addressed by user id, as shown on the leaderboard.
type composeState struct {
	inputs  []textinput.Model
	focus   int
	sending bool
	errMsg  string
}

func newComposeState() composeState {
	recipient := textinput.New()
	recipient.Placeholder = "recipient user id"
	recipient.CharLimit = 19
	recipient.Width = 40

	body := textinput.New()
	body.Placeholder = "your message"
	body.CharLimit = 2000
	body.Width = 60

	return composeState{inputs: []textinput.Model{recipient, body}}
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateComposeInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.openMessages()

	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
		return m.focusComposeField(m.compose.focus + 1)

	case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
		return m.focusComposeField(m.compose.focus - 1)

	case key.Matches(keyMsg, keys.enter):
		if m.compose.sending {
			return m, nil
		}
		if m.compose.focus < len(m.compose.inputs)-1 {
			return m.focusComposeField(m.compose.focus + 1)
		}
		recipientID, err := strconv.ParseInt(strings.TrimSpace(m.compose.inputs[0].Value()), 10, 64)
		if err != nil || recipientID <= 0 {
			m.compose.errMsg = "Please enter a numeric recipient id."
			return m, nil
		}
		body := strings.TrimSpace(m.compose.inputs[1].Value())
		if body == "" {
			m.compose.errMsg = "Please enter a message."
			return m, nil
		}
		m.compose.sending = true
		m.compose.errMsg = ""
		req := models.SendMessageRequest{RecipientID: recipientID, Body: body}
		return m, cmdSendMessage(m.ctx, m.services.MessageService, req)
	}

	return m.updateComposeInputs(msg)
}

func (m appModel) focusComposeField(focus int) (tea.Model, tea.Cmd) {
	n := len(m.compose.inputs)
	m.compose.focus = ((focus % n) + n) % n
	cmds := make([]tea.Cmd, 0, n)
	for i := range m.compose.inputs {
		if i == m.compose.focus {
			cmds = append(cmds, m.compose.inputs[i].Focus())
			continue
		}
		m.compose.inputs[i].Blur()
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateComposeInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.compose.inputs))
	for i := range m.compose.inputs {
		m.compose.inputs[i], cmds[i] = m.compose.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// onComposeSent lands the user in the conversation they just started.
func (m appModel) onComposeSent(msg messageSentMsg) (tea.Model, tea.Cmd) {
	m.compose.sending = false
	if msg.err != nil {
		m.compose.errMsg = errorText(msg.err)
		return m, nil
	}
	return m.openConversation(msg.message.RecipientID, "user "+strconv.FormatInt(msg.message.RecipientID, 10))
}

func (m appModel) viewCompose() string {
	var b strings.Builder
	b.WriteString(formLine("To (id): ", m.compose.inputs[0].View(), m.compose.focus == 0) + "\n")
	b.WriteString(formLine("Message: ", m.compose.inputs[1].View(), m.compose.focus == 1) + "\n")
	if m.compose.sending {
		b.WriteString("\n" + dimStyle.Render("Sending…") + "\n")
	}
	if m.compose.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.compose.errMsg) + "\n")
	}
	return renderPage("New message", b.String(), "enter send · tab next field · esc back")
}
