package document

import (
	"slices"
	"strings"

	"github.com/xonecas/kite/internal/highlight"
)

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// isSeparator reports whether r ends a number or keyword: ASCII whitespace
// or ASCII punctuation.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return r < 0x80 && strings.ContainsRune(asciiPunct, r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// classifier walks a row's runes once, left to right. Each rule appends
// exactly one Type per rune it claims, so len(hl) is always the position of
// the next unclassified rune.
type classifier struct {
	opts     highlight.Options
	chars    []rune
	hl       []highlight.Type
	inString bool
}

// classify returns one Type per rune of content. The bool is false when the
// row ends inside an unterminated string literal.
func classify(content string, opts highlight.Options) ([]highlight.Type, bool) {
	c := &classifier{opts: opts, chars: []rune(content)}
	c.hl = make([]highlight.Type, 0, len(c.chars))

	for i := 0; i < len(c.chars); {
		// Comment detection comes first, even inside a string literal.
		if c.comment(i) {
			break
		}
		if next, ok := c.character(i); ok {
			i = next
			continue
		}
		if next, ok := c.str(i); ok {
			i = next
			continue
		}
		if next, ok := c.number(i); ok {
			i = next
			continue
		}
		if next, ok := c.keyword(i, c.opts.PrimaryKeys, highlight.PrimaryKey); ok {
			i = next
			continue
		}
		if next, ok := c.keyword(i, c.opts.SecondaryKeys, highlight.SecondaryKey); ok {
			i = next
			continue
		}
		c.hl = append(c.hl, highlight.None)
		i++
	}
	return c.hl, !c.inString
}

func (c *classifier) mark(t highlight.Type, n int) {
	for range n {
		c.hl = append(c.hl, t)
	}
}

func (c *classifier) at(i int) (rune, bool) {
	if i < 0 || i >= len(c.chars) {
		return 0, false
	}
	return c.chars[i], true
}

// comment claims the rest of the row on "//".
func (c *classifier) comment(i int) bool {
	if !c.opts.Comments || c.chars[i] != '/' {
		return false
	}
	if next, ok := c.at(i + 1); !ok || next != '/' {
		return false
	}
	c.mark(highlight.Comment, len(c.chars)-i)
	return true
}

// character claims 'x' and '\x'.
func (c *classifier) character(i int) (int, bool) {
	if !c.opts.Characters || c.inString || c.chars[i] != '\'' {
		return i, false
	}
	next, ok := c.at(i + 1)
	if !ok {
		return i, false
	}
	closing := i + 2
	if next == '\\' {
		closing = i + 3
	}
	if r, ok := c.at(closing); !ok || r != '\'' {
		return i, false
	}
	c.mark(highlight.Character, closing-i+1)
	return closing + 1, true
}

// str opens a string literal on '"' and, while one is open, classifies
// string bodies, escape pairs and the closing quote.
func (c *classifier) str(i int) (int, bool) {
	if !c.opts.Strings {
		return i, false
	}
	r := c.chars[i]
	if !c.inString {
		if r != '"' {
			return i, false
		}
		c.inString = true
		c.mark(highlight.String, 1)
		return i + 1, true
	}
	if r == '\\' {
		if _, ok := c.at(i + 1); ok {
			c.mark(highlight.Escape, 2)
			return i + 2, true
		}
	}
	c.mark(highlight.String, 1)
	if r == '"' {
		c.inString = false
	}
	return i + 1, true
}

// number claims a run of digits with at most one '.' after a digit. The run
// must start at a token boundary.
func (c *classifier) number(i int) (int, bool) {
	if !c.opts.Numbers || !isDigit(c.chars[i]) {
		return i, false
	}
	if prev, ok := c.at(i - 1); ok && !isSeparator(prev) {
		return i, false
	}
	j := i + 1
	dot := false
	for ; j < len(c.chars); j++ {
		r := c.chars[j]
		if isDigit(r) {
			continue
		}
		if r == '.' && !dot && isDigit(c.chars[j-1]) {
			dot = true
			continue
		}
		break
	}
	c.mark(highlight.Number, j-i)
	return j, true
}

// keyword claims the first keyword in keys that sits between separators.
func (c *classifier) keyword(i int, keys []string, t highlight.Type) (int, bool) {
	if prev, ok := c.at(i - 1); ok && !isSeparator(prev) {
		return i, false
	}
	for _, kw := range keys {
		kr := []rune(kw)
		end := i + len(kr)
		if len(kr) == 0 || end > len(c.chars) {
			continue
		}
		if !slices.Equal(c.chars[i:end], kr) {
			continue
		}
		if next, ok := c.at(end); ok && !isSeparator(next) {
			continue
		}
		c.mark(t, len(kr))
		return end, true
	}
	return i, false
}
