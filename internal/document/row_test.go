package document

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/golden"

	"github.com/xonecas/kite/internal/highlight"
)

func TestRowGraphemeLength(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"he\u0301llo", 5},
		{"🇺🇸", 1},
		{"a🇺🇸b", 3},
		{"👨‍👩‍👧‍👦", 1},
		{"👋🏽 hi", 4},
		{"\tx", 2},
	}
	for _, tc := range cases {
		if got := NewRow(tc.in).Len(); got != tc.want {
			t.Errorf("Len(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

var roundTripInputs = []string{
	"",
	"hello world",
	"he\u0301llo",
	"a🇺🇸b🇫🇷c",
	"tab\there",
	"👨‍👩‍👧 family",
}

func TestSplitAppendRoundTrip(t *testing.T) {
	for _, in := range roundTripInputs {
		n := NewRow(in).Len()
		for at := 0; at <= n; at++ {
			r := NewRow(in)
			rest := r.Split(at)
			if r.Len() != at {
				t.Errorf("Split(%q, %d): head len %d", in, at, r.Len())
			}
			if rest.Len() != n-at {
				t.Errorf("Split(%q, %d): tail len %d, want %d", in, at, rest.Len(), n-at)
			}
			if len(rest.Highlighting()) != 0 {
				t.Errorf("Split(%q, %d): tail should start unhighlighted", in, at)
			}
			r.Append(rest)
			if r.String() != in || r.Len() != n {
				t.Errorf("Split/Append(%q, %d) = %q (len %d)", in, at, r.String(), r.Len())
			}
		}
	}
}

func TestSplitPastEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	NewRow("abc").Split(4)
}

func TestInsertDeleteInverse(t *testing.T) {
	for _, in := range roundTripInputs {
		n := NewRow(in).Len()
		for at := 0; at <= n; at++ {
			r := NewRow(in)
			r.Insert(at, 'X')
			if r.Len() != n+1 {
				t.Errorf("Insert(%q, %d): len %d, want %d", in, at, r.Len(), n+1)
			}
			r.Delete(at)
			if r.String() != in || r.Len() != n {
				t.Errorf("Insert/Delete(%q, %d) = %q", in, at, r.String())
			}
		}
	}
}

func TestInsertPastEndAppends(t *testing.T) {
	r := NewRow("ab")
	r.Insert(10, 'c')
	if r.String() != "abc" || r.Len() != 3 {
		t.Errorf("got %q len %d", r.String(), r.Len())
	}
	r.Insert(1, '🇺')
	if r.String() != "a🇺bc" {
		t.Errorf("got %q", r.String())
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	r := NewRow("abc")
	r.Delete(3)
	r.Delete(-1)
	if r.String() != "abc" {
		t.Errorf("got %q", r.String())
	}
	r.Delete(1)
	if r.String() != "ac" || r.Len() != 2 {
		t.Errorf("got %q len %d", r.String(), r.Len())
	}
}

func TestDeleteWholeCluster(t *testing.T) {
	r := NewRow("a🇺🇸b")
	r.Delete(1)
	if r.String() != "ab" || r.Len() != 2 {
		t.Errorf("got %q len %d", r.String(), r.Len())
	}
}

func TestRowFind(t *testing.T) {
	cases := []struct {
		name   string
		row    string
		query  string
		at     int
		dir    SearchDirection
		want   int
		wantOK bool
	}{
		{"forward first", "a needle b needle", "needle", 0, Forward, 2, true},
		{"forward from inside", "a needle b needle", "needle", 3, Forward, 11, true},
		{"forward window start", "a needle b needle", "needle", 11, Forward, 11, true},
		{"forward none", "a needle b", "needle", 8, Forward, 0, false},
		{"backward last", "a needle b needle", "needle", 17, Backward, 11, true},
		{"backward window end", "a needle b needle", "needle", 16, Backward, 2, true},
		{"backward none", "a needle", "needle", 2, Backward, 0, false},
		{"empty query", "abc", "", 0, Forward, 0, false},
		{"at past end", "abc", "a", 4, Forward, 0, false},
		{"at equals len forward", "abc", "c", 3, Forward, 0, false},
		{"grapheme index after flag", "🇺🇸 needle", "needle", 0, Forward, 2, true},
		{"grapheme index after accent", "he\u0301llo wörld", "wörld", 0, Forward, 6, true},
		{"backward with flags", "x 🇺🇸 x", "x", 4, Backward, 0, true},
		{"match inside cluster", "e\u0301", "\u0301", 0, Forward, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NewRow(tc.row).Find(tc.query, tc.at, tc.dir)
			if ok != tc.wantOK || (ok && got != tc.want) {
				t.Errorf("Find(%q, %q, %d) = %d, %v; want %d, %v", tc.row, tc.query, tc.at, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestRenderClips(t *testing.T) {
	r := NewRow("hello world")
	r.Highlight("", highlight.Options{})
	cases := []struct {
		start, end int
		want       string
	}{
		{0, 5, "hello"},
		{6, 100, "world"},
		{20, 30, ""},
		{3, 2, ""},
		{0, 0, ""},
	}
	for _, tc := range cases {
		out := r.Render(tc.start, tc.end)
		if !strings.HasSuffix(out, highlight.ResetFg) {
			t.Errorf("Render(%d,%d) missing reset: %q", tc.start, tc.end, out)
		}
		if got := ansi.Strip(out); got != tc.want {
			t.Errorf("Render(%d,%d) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestRenderTabAsSpace(t *testing.T) {
	r := NewRow("\tx\ty")
	r.Highlight("", highlight.Options{})
	if got := ansi.Strip(r.Render(0, 10)); got != " x y" {
		t.Errorf("got %q", got)
	}
}

func TestRenderKeepsClusters(t *testing.T) {
	r := NewRow("a🇺🇸b")
	r.Highlight("", highlight.Options{})
	if got := ansi.Strip(r.Render(1, 2)); got != "🇺🇸" {
		t.Errorf("got %q", got)
	}
}

func TestRenderCompressesColorRuns(t *testing.T) {
	r := NewRow("123 456")
	r.Highlight("", highlight.Options{Numbers: true})
	out := r.Render(0, 7)
	number := highlight.DefaultColors().Of(highlight.Number).Fg()
	none := highlight.DefaultColors().Of(highlight.None).Fg()
	if n := strings.Count(out, number); n != 2 {
		t.Errorf("expected 2 number directives, got %d in %q", n, out)
	}
	if n := strings.Count(out, none); n != 1 {
		t.Errorf("expected 1 none directive, got %d in %q", n, out)
	}
	if !strings.HasPrefix(out, number+"123") {
		t.Errorf("unexpected prefix: %q", out)
	}
}

func TestRenderColorsUsesTable(t *testing.T) {
	r := NewRow("42")
	r.Highlight("", highlight.Options{Numbers: true})
	red := highlight.RGB{R: 255}
	colors := highlight.DefaultColors().With(map[highlight.Type]highlight.RGB{highlight.Number: red})
	want := red.Fg() + "42" + highlight.ResetFg
	if got := r.RenderColors(0, 2, colors); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderGolden(t *testing.T) {
	r := NewRow("let x = 42; // hi")
	r.Highlight("", allOn)
	golden.RequireEqual(t, []byte(r.Render(0, 80)))
}
