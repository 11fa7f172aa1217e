package tui

import (
	"strings"

	"github.com/akyairhashvil/coursecards/internal/config"
	"github.com/akyairhashvil/coursecards/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// Logo is a static banner drawn above the list. Its content is not
// interpreted; it is cropped to the space it is given.
type Logo struct {
	Art         string
	Description string
}

var DefaultLogo = Logo{
	Description: config.LogoDescription,
	Art: strings.Join([]string{
		`   ____                            `,
		`  / ___|___  _   _ _ __ ___  ___  ___`,
		` | |   / _ \| | | | '__/ __|/ _ \/ __|`,
		` | |__| (_) | |_| | |  \__ \  __/\__ \`,
		`  \____\___/ \__,_|_|  |___/\___||___/`,
		``,
	}, "\n"),
}

// Render crops the art to exactly height lines of at most width cells,
// centered horizontally.
func (l Logo) Render(theme Theme, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	art := util.SplitLines(l.Art)
	lines := make([]string, height)
	for i := range lines {
		var line string
		if i < len(art) {
			line = util.Truncate(art[i], width, "")
		}
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Logo.Render(line))
	}
	return strings.Join(lines, "\n")
}
