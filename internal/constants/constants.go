package constants

import "time"

// AppName is used for the data directory, the log file and the welcome line.
const AppName = "kite"

// Version is shown on the welcome line of an empty buffer.
const Version = "0.3.0"

// QuitTimes is how many extra Ctrl-Q presses a dirty buffer asks for.
const QuitTimes = 1

// MessageTimeout is how long a status message stays in the message bar.
const MessageTimeout = 5 * time.Second

// Status bar colors.
const (
	StatusFg = "#3f3f3f"
	StatusBg = "#efefef"
)

// SyntaxTheme is the Chroma theme used when the config does not name one.
// Empty means the built-in color table.
//
// Some themes that map well onto the nine highlight classes:
//
// Dark themes (recommended for terminals):
//   - monokai           - Classic Sublime Text theme
//   - dracula           - Popular purple/pink theme
//   - nord              - Cool bluish theme
//   - gruvbox           - Warm, retro colors
//   - onedark           - Atom's One Dark
//   - github-dark       - GitHub's dark theme
//   - solarized-dark    - Classic Solarized
//   - vulcan            - Star Trek inspired
//
// Light themes:
//   - github            - GitHub's light theme
//   - solarized-light   - Classic Solarized light
//   - gruvbox-light     - Gruvbox light variant
const SyntaxTheme = ""
