package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/kite/internal/constants"
)

var (
	ColorStatusFg = lipgloss.Color(constants.StatusFg)
	ColorStatusBg = lipgloss.Color(constants.StatusBg)
)

// Styles holds the lipgloss styles of the editor chrome.
type Styles struct {
	StatusBar lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		StatusBar: lipgloss.NewStyle().Foreground(ColorStatusFg).Background(ColorStatusBg),
	}
}
