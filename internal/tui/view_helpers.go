package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sparkkhoj/spark-khoj/internal/adapter"
	"github.com/sparkkhoj/spark-khoj/internal/service"
)

// errorText extracts the text to show the user for err. Server-side
// failures carry the exact message the server responded with; everything
// else falls back to a generic line so wrapped transport errors do not
// leak internals onto the screen.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	var serverErr *adapter.Error
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return "Please fill in all required fields."
	}
	if errors.Is(err, service.ErrInvalidRole) {
		return "Please select a valid role."
	}
	return "Could not reach the server. Please try again."
}

// fitText trims s to at most width runes, appending an ellipsis when
// something was cut.
func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// renderPage is the shared page chrome: title bar, body, and a help line.
func renderPage(title, body, help string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" SPARK KHOJ · " + title))
	b.WriteString("\n\n")
	b.WriteString(body)
	if help != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(help))
	}
	return appStyle.Render(b.String())
}

// valueOrDash renders s, or a dash placeholder when it is empty.
func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return dimStyle.Render("—")
	}
	return s
}

// formLine renders one labelled form row with a focus cursor.
func formLine(label, input string, focused bool) string {
	cursor := "  "
	if focused {
		cursor = selectedStyle.Render("> ")
	}
	return fmt.Sprintf("%s%s %s", cursor, labelStyle.Render(label), input)
}
