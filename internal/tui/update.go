package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scroll()

	// -- Paste ---------------------------------------------------------------
	case tea.PasteMsg:
		if m.prompt == nil {
			m.insertText(msg.Content)
			m.scroll()
		}

	// -- Message bar ---------------------------------------------------------
	case messageExpiredMsg:
		if msg.seq == m.msgSeq {
			m.message = ""
		}

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		if mdl, cmd, handled := m.handleKeyPress(msg); handled {
			return mdl, cmd
		}
	}
	return m, nil
}

// handleKeyPress processes key events. Returns (model, cmd, true) if handled.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	if m.prompt != nil {
		return m.handlePromptKey(msg)
	}
	if key.Matches(msg, m.keys.Quit) {
		return m.handleQuit()
	}

	// Any other key cancels a pending quit confirmation.
	if m.quitLeft < m.quitTimes {
		m.quitLeft = m.quitTimes
		m.clearMessage()
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Save):
		cmd = m.save()
	case key.Matches(msg, m.keys.Find):
		m.startSearch()
	case key.Matches(msg, m.keys.Enter):
		m.doc.InsertNewline(m.cursor)
		m.moveRight()
	case key.Matches(msg, m.keys.Tab):
		m.insertText("\t")
	case key.Matches(msg, m.keys.Backspace):
		if m.cursor.X > 0 || m.cursor.Y > 0 {
			m.moveLeft()
			m.doc.Delete(m.cursor)
		}
	case key.Matches(msg, m.keys.Delete):
		m.doc.Delete(m.cursor)
	case m.move(msg):
	case msg.Text != "":
		m.insertText(msg.Text)
	default:
		return Model{}, nil, false
	}
	m.scroll()
	return *m, cmd, true
}

func (m *Model) handleQuit() (Model, tea.Cmd, bool) {
	if m.quitLeft > 0 && m.doc.IsDirty() {
		m.quitLeft--
		return *m, m.setMessage("WARNING! File has unsaved changes. Press Ctrl-Q again to quit."), true
	}
	log.Debug().Str("file", m.doc.Filename()).Bool("dirty", m.doc.IsDirty()).Msg("tui: quit")
	return *m, tea.Quit, true
}

// insertText inserts s at the cursor, advancing past every rune. Carriage
// returns are dropped so pasted CRLF text splits rows once.
func (m *Model) insertText(s string) {
	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\n':
			m.doc.InsertNewline(m.cursor)
		default:
			m.doc.Insert(m.cursor, r)
		}
		m.moveRight()
	}
}

// rowLen returns the grapheme length of row y, or 0 past the last row.
func (m *Model) rowLen(y int) int {
	if row, ok := m.doc.Row(y); ok {
		return row.Len()
	}
	return 0
}

// move applies a navigation key and reports whether msg was one.
func (m *Model) move(msg tea.KeyPressMsg) bool {
	x, y := m.cursor.X, m.cursor.Y
	rows := m.doc.Len()
	switch {
	case key.Matches(msg, m.keys.Up):
		y = max(y-1, 0)
	case key.Matches(msg, m.keys.Down):
		if y < rows {
			y++
		}
	case key.Matches(msg, m.keys.Left):
		m.moveLeft()
		return true
	case key.Matches(msg, m.keys.Right):
		m.moveRight()
		return true
	case key.Matches(msg, m.keys.PageUp):
		y = max(y-m.textRows(), 0)
	case key.Matches(msg, m.keys.PageDown):
		y = min(y+m.textRows(), rows)
	case key.Matches(msg, m.keys.Home):
		x = 0
	case key.Matches(msg, m.keys.End):
		x = m.rowLen(y)
	default:
		return false
	}
	m.cursor.X = min(x, m.rowLen(y))
	m.cursor.Y = y
	return true
}

// moveLeft steps one grapheme back, wrapping to the end of the previous row.
func (m *Model) moveLeft() {
	switch {
	case m.cursor.X > 0:
		m.cursor.X--
	case m.cursor.Y > 0:
		m.cursor.Y--
		m.cursor.X = m.rowLen(m.cursor.Y)
	}
}

// moveRight steps one grapheme forward, wrapping to the start of the next
// row. The cursor may rest one row past the last line.
func (m *Model) moveRight() {
	switch {
	case m.cursor.X < m.rowLen(m.cursor.Y):
		m.cursor.X++
	case m.cursor.Y < m.doc.Len():
		m.cursor.Y++
		m.cursor.X = 0
	}
}

// scroll moves the viewport so the cursor stays on screen.
func (m *Model) scroll() {
	width, height := m.width, m.textRows()
	if width <= 0 || height <= 0 {
		return
	}
	if m.cursor.Y < m.offset.Y {
		m.offset.Y = m.cursor.Y
	} else if m.cursor.Y >= m.offset.Y+height {
		m.offset.Y = m.cursor.Y - height + 1
	}
	if m.cursor.X < m.offset.X {
		m.offset.X = m.cursor.X
	} else if m.cursor.X >= m.offset.X+width {
		m.offset.X = m.cursor.X - width + 1
	}
}

// save writes the document, asking for a name first when it has none.
func (m *Model) save() tea.Cmd {
	if m.doc.Filename() == "" {
		m.prompt = &prompt{
			label: "Save as: ",
			onDone: func(m *Model, name string) tea.Cmd {
				if name == "" {
					return m.setMessage("Save aborted")
				}
				return m.saveResult(m.doc.SaveAs(name))
			},
		}
		return nil
	}
	return m.saveResult(m.doc.Save())
}

func (m *Model) saveResult(err error) tea.Cmd {
	if err != nil {
		log.Error().Err(err).Msg("tui: save")
		return m.setMessage("Err: writing file failed")
	}
	return m.setMessage("File saved successfully")
}
