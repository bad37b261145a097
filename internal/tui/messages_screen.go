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

type messagesState struct {
	conversations []models.Conversation
	cursor        int
	loading       bool
	errMsg        string
}

func cmdLoadConversations(ctx context.Context, svc service.ClientMessageService) tea.Cmd {
	return func() tea.Msg {
		conversations, err := svc.Conversations(ctx)
		return conversationsLoadedMsg{conversations: conversations, err: err}
	}
}

func (m appModel) openMessages() (tea.Model, tea.Cmd) {
	m.screen = screenMessages
	m.messages = messagesState{loading: true}
	return m, cmdLoadConversations(m.ctx, m.services.MessageService)
}

func (m appModel) updateMessages(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenHome
		return m, nil

	case key.Matches(keyMsg, keys.up):
		if m.messages.cursor > 0 {
			m.messages.cursor--
		}

	case key.Matches(keyMsg, keys.down):
		if m.messages.cursor < len(m.messages.conversations)-1 {
			m.messages.cursor++
		}

	case key.Matches(keyMsg, keys.refresh):
		m.messages.loading = true
		m.messages.errMsg = ""
		return m, cmdLoadConversations(m.ctx, m.services.MessageService)

	case key.Matches(keyMsg, keys.compose):
		m.compose = newComposeState()
		m.screen = screenCompose
		return m, m.compose.inputs[0].Focus()

	case key.Matches(keyMsg, keys.enter):
		if len(m.messages.conversations) == 0 {
			return m, nil
		}
		preview := m.messages.conversations[m.messages.cursor]
		return m.openConversation(preview.CorrespondentID, preview.CorrespondentName)
	}
	return m, nil
}

func (m appModel) onConversationsLoaded(msg conversationsLoadedMsg) (tea.Model, tea.Cmd) {
	m.messages.loading = false
	if msg.err != nil {
		m.messages.errMsg = errorText(msg.err)
		return m, nil
	}
	m.messages.conversations = msg.conversations
	if m.messages.cursor >= len(msg.conversations) {
		m.messages.cursor = 0
	}
	return m, nil
}

func (m appModel) viewMessages() string {
	var b strings.Builder
	switch {
	case m.messages.loading:
		b.WriteString(dimStyle.Render("Loading…") + "\n")
	case m.messages.errMsg != "":
		b.WriteString(errorStyle.Render(m.messages.errMsg) + "\n")
	case len(m.messages.conversations) == 0:
		b.WriteString(dimStyle.Render("No conversations yet. Press n to write someone.") + "\n")
	default:
		for i, c := range m.messages.conversations {
			prefix := "  "
			if c.LastMessage.SenderID == m.session.User.UserID {
				prefix = "↩ "
			}
			row := fmt.Sprintf("%s%-20s %s", prefix,
				fitText(c.CorrespondentName, 20),
				dimStyle.Render(fitText(c.LastMessage.Body, 48)))
			if i == m.messages.cursor {
				row = selectedStyle.Render(fmt.Sprintf("> %-20s ", fitText(c.CorrespondentName, 20))) +
					dimStyle.Render(fitText(c.LastMessage.Body, 48))
			}
			b.WriteString(row + "\n")
		}
	}
	return renderPage("Messages", b.String(), "enter open · n new message · r refresh · esc back")
}
