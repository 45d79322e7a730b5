package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/kite/internal/constants"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	if m.width > 0 && m.height > 0 {
		x, y := m.cursorCell()
		v.Cursor = tea.NewCursor(x, y)
	}
	return v
}

// renderContent produces the string content for the view.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	rows := m.textRows()
	for i := range rows {
		if row, ok := m.doc.Row(m.offset.Y + i); ok {
			line := row.RenderColors(m.offset.X, m.offset.X+m.width, m.colors)
			b.WriteString(ansi.Truncate(line, m.width, ""))
		} else if i == rows/3 && m.doc.IsEmpty() {
			b.WriteString(m.welcomeLine())
		} else {
			b.WriteString("~")
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.statusBar())
	b.WriteByte('\n')
	b.WriteString(m.messageBar())
	return b.String()
}

// welcomeLine is the centered version banner shown on an empty document.
func (m Model) welcomeLine() string {
	msg := fmt.Sprintf("%s editor -- version %s", constants.AppName, constants.Version)
	padding := max(m.width-len(msg), 0) / 2
	line := "~" + strings.Repeat(" ", max(padding-1, 0)) + msg
	return ansi.Truncate(line, m.width, "")
}

// statusBar shows the file name, line count and modified flag on the left
// and the filetype and cursor line on the right.
func (m Model) statusBar() string {
	name := "[No Name]"
	if fn := m.doc.Filename(); fn != "" {
		name = ansi.Truncate(fn, 20, "")
	}
	modified := ""
	if m.doc.IsDirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, m.doc.Len(), modified)
	right := fmt.Sprintf("%s | %d/%d", m.doc.FileTypeName(), m.cursor.Y+1, m.doc.Len())

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	bar := ansi.Truncate(left+strings.Repeat(" ", gap)+right, m.width, "")
	return m.styles.StatusBar.Render(bar)
}

// messageBar shows the open prompt, or the current message.
func (m Model) messageBar() string {
	text := m.message
	if m.prompt != nil {
		text = m.prompt.String()
	}
	return ansi.Truncate(text, m.width, "")
}

// cursorCell returns the screen cell of the cursor.
func (m Model) cursorCell() (int, int) {
	if m.prompt != nil {
		return min(lipgloss.Width(m.prompt.String()), m.width-1), m.height - 1
	}
	x := 0
	if row, ok := m.doc.Row(m.cursor.Y); ok {
		x = ansi.StringWidth(row.RenderColors(m.offset.X, m.cursor.X, m.colors))
	}
	return min(x, m.width-1), m.cursor.Y - m.offset.Y
}
