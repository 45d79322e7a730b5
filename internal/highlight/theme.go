package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// tokenFor is the Chroma token each lexical class borrows its color from.
var tokenFor = map[Type]chroma.TokenType{
	Number:       chroma.LiteralNumber,
	String:       chroma.LiteralString,
	Escape:       chroma.LiteralStringEscape,
	Character:    chroma.LiteralStringChar,
	Comment:      chroma.Comment,
	PrimaryKey:   chroma.Keyword,
	SecondaryKey: chroma.KeywordType,
}

// HasTheme reports whether theme names a registered Chroma style.
func HasTheme(theme string) bool {
	sty := styles.Get(theme)
	if sty == nil {
		return false
	}
	return sty != styles.Fallback || theme == styles.Fallback.Name
}

// ThemeColors derives a color table from a Chroma theme. Classes the theme
// leaves unset keep their DefaultColors entry; Match takes the most saturated
// token color so it stands out against the rest of the palette. The second
// return is false when the theme is unknown.
func ThemeColors(theme string) (Colors, bool) {
	colors := DefaultColors()
	if !HasTheme(theme) {
		return colors, false
	}
	sty := styles.Get(theme)

	if fg := sty.Get(chroma.Text).Colour; fg.IsSet() {
		colors[None] = fromColour(fg)
	} else if fg := sty.Get(chroma.Background).Colour; fg.IsSet() {
		colors[None] = fromColour(fg)
	}
	for t, tok := range tokenFor {
		if c := sty.Get(tok).Colour; c.IsSet() {
			colors[t] = fromColour(c)
		}
	}
	if accent, ok := pickAccent(sty); ok {
		colors[Match] = accent
	}
	return colors, true
}

func fromColour(c chroma.Colour) RGB {
	return RGB{c.Red(), c.Green(), c.Blue()}
}

// pickAccent returns the most saturated foreground color across all tokens.
func pickAccent(sty *chroma.Style) (RGB, bool) {
	var best RGB
	bestSat := 0.0
	for tt := chroma.TokenType(0); tt < 2000; tt++ {
		e := sty.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		c := fromColour(e.Colour)
		r, g, b := float64(c.R), float64(c.G), float64(c.B)
		mx := max(r, g, b)
		mn := min(r, g, b)
		if mx == 0 {
			continue
		}
		sat := (mx - mn) / mx
		if sat > bestSat {
			bestSat = sat
			best = c
		}
	}
	return best, bestSat > 0
}
