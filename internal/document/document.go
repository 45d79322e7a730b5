// Package document holds the text buffer of the editor: an ordered list of
// rows with per-row syntax highlighting, grapheme-indexed editing and
// cross-row search.
//
// A Document has a single owner and no internal locking.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/kite/internal/filetype"
)

// ErrInvalidUTF8 is returned by Open for files that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Position is a cursor location: X is a grapheme column, Y a row index.
type Position struct {
	X int
	Y int
}

// Resolver maps a filename to the filetype used to highlight it.
type Resolver interface {
	Resolve(filename string) filetype.FileType
}

// Document is an editable list of rows backed by an optional file.
type Document struct {
	rows     []*Row
	filename string
	dirty    bool
	filetype filetype.FileType
	resolver Resolver
}

// New returns an empty, unnamed document. A nil resolver uses the built-in
// filetypes.
func New(resolver Resolver) *Document {
	if resolver == nil {
		resolver = filetype.NewRegistry()
	}
	return &Document{resolver: resolver, filetype: filetype.Default()}
}

// Open reads path into a new document, one row per line, each highlighted
// for the filetype of path.
func Open(path string, resolver Resolver) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("open %s: %w", path, ErrInvalidUTF8)
	}

	d := New(resolver)
	d.filename = path
	d.filetype = d.resolver.Resolve(path)
	opts := d.filetype.Options
	for _, line := range splitLines(string(data)) {
		row := NewRow(line)
		row.Highlight("", opts)
		d.rows = append(d.rows, row)
	}
	log.Debug().Str("file", path).Int("rows", len(d.rows)).Str("filetype", d.filetype.Name).Msg("document: open")
	return d, nil
}

// splitLines splits on '\n', strips a trailing '\r' from each line and
// drops the empty line after a final terminator.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Insert puts ch at the given position. A newline splits the row. Inserting
// on the row just past the last one appends a new row; anything further out
// is ignored.
func (d *Document) Insert(at Position, ch rune) {
	if at.Y < 0 || at.Y > len(d.rows) {
		return
	}
	d.dirty = true
	if ch == '\n' {
		d.InsertNewline(at)
		return
	}
	opts := d.filetype.Options
	if at.Y == len(d.rows) {
		row := NewRow("")
		row.Insert(0, ch)
		row.Highlight("", opts)
		d.rows = append(d.rows, row)
		return
	}
	row := d.rows[at.Y]
	row.Insert(at.X, ch)
	row.Highlight("", opts)
}

// InsertNewline splits the row at the given position, moving the text after
// the cursor onto a new row below. On the row past the last one it appends
// an empty row.
func (d *Document) InsertNewline(at Position) {
	if at.Y < 0 || at.Y > len(d.rows) {
		return
	}
	d.dirty = true
	if at.Y == len(d.rows) {
		d.rows = append(d.rows, NewRow(""))
		return
	}
	opts := d.filetype.Options
	current := d.rows[at.Y]
	next := current.Split(min(max(at.X, 0), current.Len()))
	current.Highlight("", opts)
	next.Highlight("", opts)
	d.rows = append(d.rows, nil)
	copy(d.rows[at.Y+2:], d.rows[at.Y+1:])
	d.rows[at.Y+1] = next
}

// Delete removes the grapheme at the given position. At the end of a row
// that has a successor, the next row is merged into it instead.
func (d *Document) Delete(at Position) {
	if at.Y < 0 || at.Y >= len(d.rows) {
		return
	}
	d.dirty = true
	opts := d.filetype.Options
	row := d.rows[at.Y]
	if at.X == row.Len() && at.Y+1 < len(d.rows) {
		next := d.rows[at.Y+1]
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
		row.Append(next)
		row.Highlight("", opts)
		return
	}
	row.Delete(at.X)
	row.Highlight("", opts)
}

// Save writes every row followed by a newline to the document's file. It is
// a no-op for an unnamed document. On success the filetype is resolved
// again from the filename and every row is re-highlighted.
func (d *Document) Save() error {
	if d.filename == "" {
		return nil
	}
	var b strings.Builder
	for _, row := range d.rows {
		b.WriteString(row.content)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(d.filename, []byte(b.String()), 0o644); err != nil {
		log.Error().Err(err).Str("file", d.filename).Msg("document: save failed")
		return fmt.Errorf("save %s: %w", d.filename, err)
	}
	d.filetype = d.resolver.Resolve(d.filename)
	d.dirty = false
	d.Highlight("")
	log.Debug().Str("file", d.filename).Int("rows", len(d.rows)).Str("filetype", d.filetype.Name).Msg("document: saved")
	return nil
}

// SaveAs names the document and saves it. The previous name is kept when
// the write fails.
func (d *Document) SaveAs(filename string) error {
	prev := d.filename
	d.filename = filename
	if err := d.Save(); err != nil {
		d.filename = prev
		return err
	}
	return nil
}

// Find searches for query starting at the given position and moving in dir
// one row at a time. It does not wrap around the ends of the document.
func (d *Document) Find(query string, at Position, dir SearchDirection) (Position, bool) {
	if at.Y < 0 || at.Y >= len(d.rows) {
		return Position{}, false
	}
	pos := at
	for pos.Y >= 0 && pos.Y < len(d.rows) {
		if x, ok := d.rows[pos.Y].Find(query, pos.X, dir); ok {
			return Position{X: x, Y: pos.Y}, true
		}
		if dir == Forward {
			pos.Y++
			pos.X = 0
		} else {
			pos.Y--
			if pos.Y >= 0 {
				pos.X = d.rows[pos.Y].Len()
			}
		}
	}
	return Position{}, false
}

// Highlight re-highlights every row, overlaying matches of query.
func (d *Document) Highlight(query string) {
	opts := d.filetype.Options
	for _, row := range d.rows {
		row.Highlight(query, opts)
	}
}

// Row returns the row at index.
func (d *Document) Row(index int) (*Row, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}

func (d *Document) Len() int      { return len(d.rows) }
func (d *Document) IsEmpty() bool { return len(d.rows) == 0 }
func (d *Document) IsDirty() bool { return d.dirty }

// Filename returns the backing file name, or "" for a new buffer.
func (d *Document) Filename() string { return d.filename }

// FileTypeName returns the display name of the active filetype.
func (d *Document) FileTypeName() string { return d.filetype.Name }
