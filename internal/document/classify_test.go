package document

import (
	"strings"
	"testing"

	"github.com/xonecas/kite/internal/highlight"
)

var allOn = highlight.Options{
	Numbers:       true,
	Strings:       true,
	Characters:    true,
	Comments:      true,
	PrimaryKeys:   []string{"foo", "fn", "let"},
	SecondaryKeys: []string{"i32"},
}

var typeGlyph = map[highlight.Type]byte{
	highlight.None:         '.',
	highlight.Number:       'n',
	highlight.Match:        'm',
	highlight.String:       's',
	highlight.Escape:       'e',
	highlight.Character:    'c',
	highlight.Comment:      '/',
	highlight.PrimaryKey:   'K',
	highlight.SecondaryKey: 'k',
}

// pattern renders a highlight slice one glyph per rune.
func pattern(types []highlight.Type) string {
	var b strings.Builder
	for _, t := range types {
		b.WriteByte(typeGlyph[t])
	}
	return b.String()
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		opts   *highlight.Options
		want   string
		closed bool
	}{
		{"comment inside string wins", `"// not a comment"`, nil, "s/////////////////", false},
		{"keyword needs trailing separator", "foobar", nil, "......", true},
		{"keyword then space", "foo bar", nil, "KKK....", true},
		{"underscore is a separator", "foo_bar", nil, "KKK....", true},
		{"list order within tier", "fn main", nil, "KK.....", true},
		{"secondary keyword", "i32 x", nil, "kkk..", true},
		{"let with number", "let x = 42;", nil, "KKK.....nn.", true},
		{"single dot in number", "x = 3.14.5", nil, "....nnnn.n", true},
		{"number must start a token", "a1 1a", nil, "...n.", true},
		{"character literals", `'a' '\n' 'ab'`, nil, "ccc.cccc.....", true},
		{"escape pairs in string", `"a\"b" c`, nil, "sseess..", true},
		{"unterminated string", `"abc`, nil, "ssss", false},
		{"trailing backslash", `"a\`, nil, "sss", false},
		{"number inside string", `"42"`, nil, "ssss", true},
		{"character inside string", `"'a'"`, nil, "sssss", true},
		{"comment after code", "x // c", nil, "..////", true},
		{"comments disabled", "x // c", &highlight.Options{Numbers: true}, "......", true},
		{"everything disabled", `let "x" 1 // c`, &highlight.Options{}, "..............", true},
		{"empty row", "", nil, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := allOn
			if tc.opts != nil {
				opts = *tc.opts
			}
			types, closed := classify(tc.in, opts)
			if got := pattern(types); got != tc.want {
				t.Errorf("classify(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if closed != tc.closed {
				t.Errorf("classify(%q) closed=%v, want %v", tc.in, closed, tc.closed)
			}
		})
	}
}

func TestClassifyOneTypePerRune(t *testing.T) {
	inputs := []string{
		"héllo wörld",
		"🇺🇸 flag",
		`let s = "naïve\t\"x\"" // ñ`,
		"'ñ' 'é",
		"\"\\",
	}
	for _, in := range inputs {
		types, _ := classify(in, allOn)
		if n := len([]rune(in)); len(types) != n {
			t.Errorf("classify(%q): %d types for %d runes", in, len(types), n)
		}
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range " \t!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" {
		if !isSeparator(r) {
			t.Errorf("%q should be a separator", r)
		}
	}
	for _, r := range "aZ09\u00e9\u2014" {
		if isSeparator(r) {
			t.Errorf("%q should not be a separator", r)
		}
	}
}

func TestMatchOverlay(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		query string
		opts  highlight.Options
		want  string
	}{
		{"every occurrence", "a needle b needle", "needle", highlight.Options{}, "..mmmmmm...mmmmmm"},
		{"non-overlapping", "aaaa", "aa", highlight.Options{}, "mmmm"},
		{"odd overlap", "aaa", "aa", highlight.Options{}, "mm."},
		{"over classification", "let needle = 1;", "needle", allOn, "KKK.mmmmmm...n."},
		{"no match", "let x", "zzz", allOn, "KKK.."},
		{"empty query", "let x", "", allOn, "KKK.."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRow(tc.in)
			r.Highlight(tc.query, tc.opts)
			if got := pattern(r.Highlighting()); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// The overlay writes rune slots starting at the grapheme index Find returns,
// so a multi-rune cluster before the match shifts it.
func TestMatchOverlayIndexMismatch(t *testing.T) {
	r := NewRow("🇺🇸 x")
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	r.Highlight("x", highlight.Options{})
	if got, want := pattern(r.Highlighting()), "..m."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
