// Package tui is the interactive front end: a bubbletea program editing a
// single document.
package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/kite/internal/constants"
	"github.com/xonecas/kite/internal/document"
	"github.com/xonecas/kite/internal/highlight"
)

// chromeRows is the status bar plus the message bar.
const chromeRows = 2

// Options configures a Model.
type Options struct {
	// Colors is the highlight color table. The zero value means
	// highlight.DefaultColors.
	Colors highlight.Colors

	// QuitTimes is how many extra Ctrl-Q presses a modified buffer needs.
	QuitTimes int

	// Message is shown in the message bar on start. Empty shows the key help.
	Message string
}

// Model is the application model
type Model struct {
	doc    *document.Document
	colors highlight.Colors
	keys   KeyMap
	styles Styles

	width  int
	height int

	cursor document.Position // grapheme column, row index
	offset document.Position // first visible column and row

	message string
	msgSeq  int // bumped on every message; stale expiry ticks are ignored

	quitTimes int
	quitLeft  int

	prompt *prompt
}

// messageExpiredMsg clears the message bar once MessageTimeout has passed.
type messageExpiredMsg struct{ seq int }

// New creates the editor model for doc.
func New(doc *document.Document, opts Options) Model {
	colors := opts.Colors
	if colors == (highlight.Colors{}) {
		colors = highlight.DefaultColors()
	}
	keys := DefaultKeyMap()
	msg := opts.Message
	if msg == "" {
		msg = keys.helpLine()
	}
	return Model{
		doc:       doc,
		colors:    colors,
		keys:      keys,
		styles:    DefaultStyles(),
		message:   msg,
		quitTimes: opts.QuitTimes,
		quitLeft:  opts.QuitTimes,
	}
}

// Init initializes the TUI (required by BubbleTea)
func (m Model) Init() tea.Cmd {
	return m.expireMessage()
}

// setMessage shows text in the message bar until it expires.
func (m *Model) setMessage(text string) tea.Cmd {
	m.message = text
	m.msgSeq++
	return m.expireMessage()
}

func (m *Model) clearMessage() {
	m.message = ""
	m.msgSeq++
}

func (m Model) expireMessage() tea.Cmd {
	seq := m.msgSeq
	return tea.Tick(constants.MessageTimeout, func(time.Time) tea.Msg {
		return messageExpiredMsg{seq: seq}
	})
}

// textRows is the number of screen rows available for the document.
func (m Model) textRows() int {
	return max(m.height-chromeRows, 0)
}

// Cursor returns the cursor position in document coordinates.
func (m Model) Cursor() document.Position { return m.cursor }

// Message returns the text currently shown in the message bar.
func (m Model) Message() string { return m.message }
