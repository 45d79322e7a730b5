package tui

import (
	"unicode"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/kite/internal/document"
)

// prompt is a one-line input shown in the message bar. It takes every key
// until Enter or Esc.
type prompt struct {
	label string
	input []rune

	// onKey runs after every key with the current input.
	onKey func(m *Model, msg tea.KeyPressMsg, value string)

	// onDone runs once the prompt closes. value is "" when the user
	// cancelled or entered nothing.
	onDone func(m *Model, value string) tea.Cmd
}

func (p *prompt) String() string { return p.label + string(p.input) }

func (m *Model) handlePromptKey(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	p := m.prompt
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m.closePrompt(string(p.input))
	case key.Matches(msg, m.keys.Cancel):
		return m.closePrompt("")
	case key.Matches(msg, m.keys.Backspace):
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	default:
		for _, r := range msg.Text {
			if !unicode.IsControl(r) {
				p.input = append(p.input, r)
			}
		}
	}
	if p.onKey != nil {
		p.onKey(m, msg, string(p.input))
	}
	return *m, nil, true
}

func (m *Model) closePrompt(value string) (Model, tea.Cmd, bool) {
	p := m.prompt
	m.prompt = nil
	m.clearMessage()
	var cmd tea.Cmd
	if p.onDone != nil {
		cmd = p.onDone(m, value)
	}
	m.scroll()
	return *m, cmd, true
}

// startSearch opens the incremental search prompt. Matches are highlighted
// as the query changes; Right/Down jump to the next match and Left/Up to the
// previous one. Cancelling restores the cursor; accepting a query with no
// match reports it in the message bar.
func (m *Model) startSearch() {
	saved, savedOffset := m.cursor, m.offset
	m.prompt = &prompt{
		label: "Search (ESC to cancel, Arrows to navigate): ",
		onKey: func(m *Model, msg tea.KeyPressMsg, query string) {
			dir := document.Forward
			moved := false
			switch {
			case key.Matches(msg, m.keys.Right, m.keys.Down):
				m.moveRight()
				moved = true
			case key.Matches(msg, m.keys.Left, m.keys.Up):
				dir = document.Backward
			}
			if pos, ok := m.doc.Find(query, m.cursor, dir); ok {
				m.cursor = pos
				m.scroll()
			} else if moved {
				m.moveLeft()
			}
			m.doc.Highlight(query)
		},
		onDone: func(m *Model, query string) tea.Cmd {
			m.doc.Highlight("")
			if query == "" {
				m.cursor, m.offset = saved, savedOffset
				return nil
			}
			if _, ok := m.doc.Find(query, m.cursor, document.Forward); !ok {
				return m.setMessage(query + " is not found")
			}
			return nil
		},
	}
}
