package tui

import (
	"strings"

	"github.com/akyairhashvil/coursecards/internal/config"
	"github.com/akyairhashvil/coursecards/internal/models"
)

// PreviewCard renders a single collapsed card.
func PreviewCard(c models.Course, dark bool, width int) string {
	return renderCard(c, 0, ResolveTheme(dark), width)
}

// PreviewList renders the whole screen statically with every card collapsed.
// It is what gets printed when there is no terminal to interact with.
func PreviewList(courses []models.Course, logo Logo, dark bool, width int) string {
	theme := ResolveTheme(dark)
	inner := width - theme.Base.GetHorizontalFrameSize()
	rows := BuildRows(courses, NewExpansionState(), theme, inner)

	parts := make([]string, 0, len(rows)*2+1)
	if config.LogoHeight > 0 {
		parts = append(parts, logo.Render(theme, inner, config.LogoHeight))
	}
	for i, r := range rows {
		parts = append(parts, r.Content)
		gap := config.CardGap
		if i == 0 {
			gap = config.HeaderGap
		}
		for j := 0; j < gap; j++ {
			parts = append(parts, "")
		}
	}
	return theme.Base.Render(strings.Join(parts, "\n"))
}
