package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/coursecards/internal/config"
	"github.com/akyairhashvil/coursecards/internal/models"
	"github.com/akyairhashvil/coursecards/internal/util"
	"github.com/charmbracelet/lipgloss"
)

type RowKind int

const (
	RowHeader RowKind = iota
	RowCard
)

// Row is one entry of the rendered list. The header row has no key.
type Row struct {
	Kind    RowKind
	Key     models.ItemKey
	Index   int
	Content string
}

// BuildRows renders the header followed by one settled card per course, in
// catalog order.
func BuildRows(courses []models.Course, state *ExpansionState, theme Theme, width int) []Row {
	keys := models.ItemKeys(courses)
	rows := make([]Row, 0, len(courses)+1)
	rows = append(rows, Row{Kind: RowHeader, Index: -1, Content: renderHeader(theme, width)})
	for i, c := range courses {
		reveal := 0.0
		if state != nil && state.IsExpanded(keys[i]) {
			reveal = 1
		}
		rows = append(rows, Row{
			Kind:    RowCard,
			Key:     keys[i],
			Index:   i,
			Content: renderCard(c, reveal, theme, width),
		})
	}
	return rows
}

func renderHeader(theme Theme, width int) string {
	if width < 1 {
		width = 1
	}
	return theme.Header.Width(width).Render(config.HeaderTitle)
}

func cardWidth(width int) int {
	if width < config.MinCardWidth {
		return config.MinCardWidth
	}
	return width
}

// renderCard draws a course. reveal in [0,1] is the share of the detail
// lines shown; 0 is collapsed, 1 fully expanded.
func renderCard(c models.Course, reveal float64, theme Theme, width int) string {
	width = cardWidth(width)
	inner := width - theme.Card.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var lines []string
	for _, l := range util.Wrap(c.Title, inner) {
		lines = append(lines, theme.Title.Render(l))
	}
	lines = append(lines, theme.Meta.Render(metaLine(c, inner)))

	details := detailLines(c, inner)
	if n := revealedCount(reveal, len(details)); n > 0 {
		for _, l := range details[:n] {
			lines = append(lines, theme.Detail.Render(l))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return theme.Card.Width(width - theme.Card.GetHorizontalBorderSize()).Render(body)
}

// metaLine puts the code on the left and the credits on the right.
func metaLine(c models.Course, width int) string {
	left := config.CodeLabel + c.Code
	right := config.CreditsLabel + strconv.Itoa(c.CreditHours)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return util.Truncate(left+strings.Repeat(" ", gap)+right, width, "…")
}

func detailLines(c models.Course, width int) []string {
	lines := []string{""}
	lines = append(lines, util.Wrap(config.DescriptionLabel+c.Description, width)...)
	lines = append(lines, util.Wrap(config.PrerequisitesLabel+c.Prerequisites, width)...)
	return lines
}

func revealedCount(reveal float64, total int) int {
	if reveal <= 0 || total == 0 {
		return 0
	}
	if reveal >= 1 {
		return total
	}
	return int(math.Round(reveal * float64(total)))
}
