package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/models"
)

type conversationState struct {
	correspondentID   int64
	correspondentName string
	messages          []models.Message
	input             textinput.Model
	loading           bool
	sending           bool
	errMsg            string
}

func cmdLoadConversation(ctx context.Context, svc service.ClientMessageService, correspondentID int64) tea.Cmd {
	return func() tea.Msg {
		messages, err := svc.Conversation(ctx, correspondentID)
		return conversationLoadedMsg{correspondentID: correspondentID, messages: messages, err: err}
	}
}

func cmdSendMessage(ctx context.Context, svc service.ClientMessageService, req models.SendMessageRequest) tea.Cmd {
	return func() tea.Msg {
		message, err := svc.Send(ctx, req)
		return messageSentMsg{message: message, err: err}
	}
}

func (m appModel) openConversation(correspondentID int64, name string) (tea.Model, tea.Cmd) {
	input := textinput.New()
	input.Placeholder = "type a message"
	input.CharLimit = 2000
	input.Width = 60

	m.conversation = conversationState{
		correspondentID:   correspondentID,
		correspondentName: name,
		input:             input,
		loading:           true,
	}
	m.screen = screenConversation
	return m, tea.Batch(
		m.conversation.input.Focus(),
		cmdLoadConversation(m.ctx, m.services.MessageService, correspondentID),
	)
}

func (m appModel) updateConversation(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.conversation.input, cmd = m.conversation.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.openMessages()

	case key.Matches(keyMsg, keys.enter):
		if m.conversation.sending {
			return m, nil
		}
		body := strings.TrimSpace(m.conversation.input.Value())
		if body == "" {
			return m, nil
		}
		m.conversation.sending = true
		m.conversation.errMsg = ""
		req := models.SendMessageRequest{
			RecipientID: m.conversation.correspondentID,
			Body:        body,
		}
		return m, cmdSendMessage(m.ctx, m.services.MessageService, req)
	}

	var cmd tea.Cmd
	m.conversation.input, cmd = m.conversation.input.Update(msg)
	return m, cmd
}

func (m appModel) onConversationLoaded(msg conversationLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.correspondentID != m.conversation.correspondentID {
		// A stale load for a conversation the user already left.
		return m, nil
	}
	m.conversation.loading = false
	if msg.err != nil {
		m.conversation.errMsg = errorText(msg.err)
		return m, nil
	}
	m.conversation.messages = msg.messages
	return m, nil
}

func (m appModel) onMessageSent(msg messageSentMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenCompose {
		return m.onComposeSent(msg)
	}
	m.conversation.sending = false
	if msg.err != nil {
		m.conversation.errMsg = errorText(msg.err)
		return m, nil
	}
	m.conversation.messages = append(m.conversation.messages, msg.message)
	m.conversation.input.Reset()
	return m, nil
}

func (m appModel) viewConversation() string {
	var b strings.Builder
	switch {
	case m.conversation.loading:
		b.WriteString(dimStyle.Render("Loading…") + "\n")
	case len(m.conversation.messages) == 0:
		b.WriteString(dimStyle.Render("No messages yet. Say hello!") + "\n")
	default:
		for _, message := range m.conversation.messages {
			line := bubbleTheirsStyle.Render(message.Body)
			if message.SenderID == m.session.User.UserID {
				line = "        " + bubbleMineStyle.Render(message.Body)
			}
			b.WriteString(line + "\n")
			b.WriteString(dimStyle.Render("  "+message.CreatedAt.Format("2 Jan 15:04")) + "\n")
		}
	}

	b.WriteString("\n" + m.conversation.input.View() + "\n")
	if m.conversation.sending {
		b.WriteString(dimStyle.Render("Sending…") + "\n")
	}
	if m.conversation.errMsg != "" {
		b.WriteString(errorStyle.Render(m.conversation.errMsg) + "\n")
	}
	title := fmt.Sprintf("Chat with %s", m.conversation.correspondentName)
	return renderPage(title, b.String(), "enter send · esc back to inbox")
}
