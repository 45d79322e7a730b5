// Package highlight defines the lexical classes a row is split into, the
// per-filetype options that switch them on, and the colors each class is
// rendered with.
package highlight

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Type is the lexical class of a single character.
type Type uint8

const (
	None Type = iota
	Number
	Match
	String
	Escape
	Character
	Comment
	PrimaryKey
	SecondaryKey

	numTypes
)

var typeNames = [numTypes]string{
	None:         "none",
	Number:       "number",
	Match:        "match",
	String:       "string",
	Escape:       "escape",
	Character:    "character",
	Comment:      "comment",
	PrimaryKey:   "primary_key",
	SecondaryKey: "secondary_key",
}

func (t Type) String() string {
	if t >= numTypes {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// ParseType returns the Type whose config name is name.
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return Type(t), true
		}
	}
	return None, false
}

// Types returns every lexical class in declaration order.
func Types() []Type {
	out := make([]Type, 0, numTypes)
	for t := None; t < numTypes; t++ {
		out = append(out, t)
	}
	return out
}

// Options describes which lexical classes a filetype highlights. A value is
// shared between rows and must be treated as read-only once built.
type Options struct {
	Numbers    bool
	Strings    bool
	Characters bool
	Comments   bool

	// Keyword lists; order within a list is match priority.
	PrimaryKeys   []string
	SecondaryKeys []string
}

// RGB is a 24-bit terminal color.
type RGB struct{ R, G, B uint8 }

// ResetFg restores the terminal's default foreground color.
const ResetFg = "\x1b[39m"

// Fg returns the ANSI 24-bit foreground escape sequence for c.
func (c RGB) Fg() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" (or "#rgb") color.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// Colors maps every Type to the color it is rendered with.
type Colors [numTypes]RGB

// DefaultColors is the fixed lookup table used when no theme is configured.
func DefaultColors() Colors {
	return Colors{
		None:         {255, 255, 255},
		Number:       {220, 163, 163},
		Match:        {38, 139, 210},
		String:       {211, 54, 130},
		Escape:       {255, 255, 0},
		Character:    {108, 113, 196},
		Comment:      {133, 153, 0},
		PrimaryKey:   {181, 137, 0},
		SecondaryKey: {42, 161, 152},
	}
}

// Of returns the color for t; unknown types use the None color.
func (c Colors) Of(t Type) RGB {
	if t >= numTypes {
		return c[None]
	}
	return c[t]
}

// With returns a copy of c with the given entries replaced.
func (c Colors) With(overrides map[Type]RGB) Colors {
	for t, rgb := range overrides {
		if t < numTypes {
			c[t] = rgb
		}
	}
	return c
}
