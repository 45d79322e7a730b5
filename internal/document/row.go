package document

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/xonecas/kite/internal/highlight"
)

// SearchDirection selects which way Find scans.
type SearchDirection int

const (
	Forward SearchDirection = iota
	Backward
)

// Row is one line of text. Columns passed to its methods are grapheme
// cluster indices; the highlight slice holds one Type per rune.
type Row struct {
	content   string
	highlight []highlight.Type
	length    int // grapheme clusters in content
	open      bool
}

// NewRow returns a row holding s. Its highlighting is empty until Highlight
// is called.
func NewRow(s string) *Row {
	return &Row{content: s, length: uniseg.GraphemeClusterCount(s)}
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int { return r.length }

func (r *Row) IsEmpty() bool { return r.length == 0 }

// String returns the row's text.
func (r *Row) String() string { return r.content }

// Bytes returns the row's text as written to disk.
func (r *Row) Bytes() []byte { return []byte(r.content) }

// Highlighting returns the per-rune classification computed by the last
// call to Highlight. The slice must not be modified.
func (r *Row) Highlighting() []highlight.Type { return r.highlight }

// OpenString reports whether the last Highlight pass ended inside an
// unterminated string literal.
func (r *Row) OpenString() bool { return r.open }

// byteOffset returns the byte offset of grapheme at, or len(content) when at
// is past the last grapheme.
func (r *Row) byteOffset(at int) int {
	if at <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(r.content)
	idx := 0
	for g.Next() {
		if idx == at {
			from, _ := g.Positions()
			return from
		}
		idx++
	}
	return len(r.content)
}

func (r *Row) setContent(s string) {
	r.content = s
	r.length = uniseg.GraphemeClusterCount(s)
}

// Insert puts ch before grapheme at, or appends it when at >= Len. The
// highlighting is left stale; call Highlight afterwards.
func (r *Row) Insert(at int, ch rune) {
	if at >= r.length {
		r.setContent(r.content + string(ch))
		return
	}
	off := r.byteOffset(at)
	r.setContent(r.content[:off] + string(ch) + r.content[off:])
}

// Delete removes grapheme at. Out of range is a no-op.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.length {
		return
	}
	from := r.byteOffset(at)
	to := r.byteOffset(at + 1)
	r.setContent(r.content[:from] + r.content[to:])
}

// Split truncates r to graphemes [0, at) and returns a new row holding the
// rest. The returned row has no highlighting.
func (r *Row) Split(at int) *Row {
	if at < 0 || at > r.length {
		panic(fmt.Sprintf("document: split at %d outside row of length %d", at, r.length))
	}
	off := r.byteOffset(at)
	rest := NewRow(r.content[off:])
	r.setContent(r.content[:off])
	return rest
}

// Append concatenates other onto r.
func (r *Row) Append(other *Row) {
	r.setContent(r.content + other.content)
}

// Render returns graphemes [start, end) with the default color table.
func (r *Row) Render(start, end int) string {
	return r.RenderColors(start, end, highlight.DefaultColors())
}

// RenderColors returns graphemes [start, min(end, Len)) as a display string.
// A foreground directive is written only where the classification changes,
// and the result always ends with a foreground reset. Tabs render as a
// single space.
func (r *Row) RenderColors(start, end int, colors highlight.Colors) string {
	end = min(end, r.length)
	start = max(min(start, end), 0)

	var b strings.Builder
	current := highlight.None
	g := uniseg.NewGraphemes(r.content)
	for idx := 0; g.Next() && idx < end; idx++ {
		if idx < start {
			continue
		}
		// The highlight slice is rune-indexed; it is looked up by grapheme
		// index here, which only agrees for single-rune clusters.
		t := highlight.None
		if idx < len(r.highlight) {
			t = r.highlight[idx]
		}
		if t != current {
			current = t
			b.WriteString(colors.Of(t).Fg())
		}
		if cluster := g.Str(); cluster == "\t" {
			b.WriteByte(' ')
		} else {
			b.WriteString(cluster)
		}
	}
	b.WriteString(highlight.ResetFg)
	return b.String()
}

// Find returns the grapheme index of query within the row. Forward searches
// graphemes [at, Len) for the first occurrence, Backward searches [0, at)
// for the last one.
func (r *Row) Find(query string, at int, dir SearchDirection) (int, bool) {
	if query == "" || at < 0 || at > r.length {
		return 0, false
	}
	start, end := at, r.length
	if dir == Backward {
		start, end = 0, at
	}
	window := r.content[r.byteOffset(start):r.byteOffset(end)]

	var match int
	if dir == Forward {
		match = strings.Index(window, query)
	} else {
		match = strings.LastIndex(window, query)
	}
	if match < 0 {
		return 0, false
	}

	g := uniseg.NewGraphemes(window)
	for idx := 0; g.Next(); idx++ {
		from, _ := g.Positions()
		if from == match {
			return start + idx, true
		}
		if from > match {
			break
		}
	}
	return 0, false
}

// Highlight recomputes the row's classification. A non-empty query is
// overlaid as Match on every non-overlapping forward occurrence.
func (r *Row) Highlight(query string, opts highlight.Options) {
	r.highlight, r.open = classify(r.content, opts)
	if query == "" {
		return
	}
	qlen := uniseg.GraphemeClusterCount(query)
	for at := 0; ; {
		pos, ok := r.Find(query, at, Forward)
		if !ok {
			break
		}
		for i := pos; i < pos+qlen && i < len(r.highlight); i++ {
			r.highlight[i] = highlight.Match
		}
		at = pos + qlen
	}
}
