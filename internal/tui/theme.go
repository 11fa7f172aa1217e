package tui

import (
	"github.com/akyairhashvil/coursecards/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name   string
	Dark   bool
	Base   lipgloss.Style
	Border lipgloss.Color
	Logo   lipgloss.Style
	Header lipgloss.Style
	Card   lipgloss.Style
	Title  lipgloss.Style
	Meta   lipgloss.Style
	Detail lipgloss.Style
	Dim    lipgloss.Style
}

func newTheme(name string, dark bool, primary, surface, onSurface, border, dim lipgloss.Color) Theme {
	text := lipgloss.NewStyle().Foreground(onSurface).Background(surface)
	return Theme{
		Name:   name,
		Dark:   dark,
		Base:   lipgloss.NewStyle().Padding(0, config.ListPaddingX),
		Border: border,
		Logo:   lipgloss.NewStyle().Foreground(primary).Bold(true),
		Header: lipgloss.NewStyle().Foreground(primary).Bold(true).Align(lipgloss.Center),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Background(surface).
			Foreground(onSurface).
			Padding(0, config.CardPaddingX),
		Title:  text.Bold(true),
		Meta:   text,
		Detail: text,
		Dim:    lipgloss.NewStyle().Foreground(dim),
	}
}

var Themes = map[string]Theme{
	"light": newTheme("Light", false,
		lipgloss.Color("#6200EE"), // primary
		lipgloss.Color("#FFFFFF"), // card container
		lipgloss.Color("#1E1E2F"), // card content
		lipgloss.Color("63"),
		lipgloss.Color("244"),
	),
	"dark": newTheme("Dark", true,
		lipgloss.Color("#BB86FC"),
		lipgloss.Color("#121212"),
		lipgloss.Color("#FFFFFF"),
		lipgloss.Color("#0D47A1"),
		lipgloss.Color("240"),
	),
}

// ResolveTheme picks the palette for the host's light/dark flag. Only colors
// differ between the two; layout is identical.
func ResolveTheme(dark bool) Theme {
	if dark {
		return Themes["dark"]
	}
	return Themes["light"]
}
