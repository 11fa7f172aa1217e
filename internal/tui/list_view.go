package tui

import (
	"strings"

	"github.com/akyairhashvil/coursecards/internal/config"
	"github.com/akyairhashvil/coursecards/internal/models"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cardSpan is the range of content lines [start, end) occupied by a card.
type cardSpan struct {
	key        models.ItemKey
	start, end int
}

// listView is the disposable visual tree of the screen. It is rebuilt on
// every reconstruction event; the expansion flags it holds are carried
// across rebuilds by the screen through the saved-state store.
type listView struct {
	generation int
	courses    []models.Course
	keys       []models.ItemKey
	index      map[models.ItemKey]int
	state      *ExpansionState
	anims      map[models.ItemKey]*revealAnim
	cache      map[models.ItemKey]string
	renders    map[models.ItemKey]int
	header     string
	spans      []cardSpan
	viewport   viewport.Model
	theme      Theme
	width      int
	ticking    bool
}

func newListView(generation int, courses []models.Course, keys []models.ItemKey, state *ExpansionState, theme Theme, width, height int) *listView {
	if height < 1 {
		height = 1
	}
	v := &listView{
		generation: generation,
		courses:    courses,
		keys:       keys,
		index:      make(map[models.ItemKey]int, len(keys)),
		state:      state,
		anims:      make(map[models.ItemKey]*revealAnim, len(keys)),
		cache:      make(map[models.ItemKey]string, len(keys)),
		renders:    make(map[models.ItemKey]int, len(keys)),
		viewport:   viewport.New(width, height),
		theme:      theme,
		width:      width,
	}
	for i, k := range keys {
		v.index[k] = i
		// Restored cards appear at their final size.
		v.anims[k] = settledReveal(state.IsExpanded(k))
	}
	v.compose()
	return v
}

// contentWidth is the card width once list padding is taken out.
func (v *listView) contentWidth() int {
	return v.width - v.theme.Base.GetHorizontalFrameSize()
}

func (v *listView) card(key models.ItemKey) string {
	if s, ok := v.cache[key]; ok {
		return s
	}
	i := v.index[key]
	s := renderCard(v.courses[i], v.anims[key].value(), v.theme, v.contentWidth())
	v.cache[key] = s
	v.renders[key]++
	return s
}

// compose lays out the header and the cached cards and records where each
// card lands so clicks can be mapped back to it.
func (v *listView) compose() {
	if v.header == "" {
		v.header = renderHeader(v.theme, v.contentWidth())
	}
	var b strings.Builder
	line := 0
	write := func(s string) {
		if line > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s)
		line += lipgloss.Height(s)
	}

	write(v.header)
	for i := 0; i < config.HeaderGap; i++ {
		write("")
	}
	v.spans = v.spans[:0]
	for _, k := range v.keys {
		c := v.card(k)
		start := line
		write(c)
		v.spans = append(v.spans, cardSpan{key: k, start: start, end: line})
		for i := 0; i < config.CardGap; i++ {
			write("")
		}
	}
	v.viewport.SetContent(v.theme.Base.Render(b.String()))
}

// cardAt maps a line of the visible region to the card drawn there.
func (v *listView) cardAt(y int) (models.ItemKey, bool) {
	if y < 0 || y >= v.viewport.Height {
		return "", false
	}
	line := y + v.viewport.YOffset
	for _, s := range v.spans {
		if line >= s.start && line < s.end {
			return s.key, true
		}
	}
	return "", false
}

// toggle flips one card and starts its height transition. Only that card is
// re-rendered.
func (v *listView) toggle(key models.ItemKey) tea.Cmd {
	if _, ok := v.index[key]; !ok {
		return nil
	}
	expanded := v.state.Toggle(key)
	v.anims[key].retarget(expanded)
	delete(v.cache, key)
	v.compose()
	if v.ticking {
		return nil
	}
	v.ticking = true
	return revealFrameCmd(v.generation)
}

// frame advances every running animation by one step.
func (v *listView) frame(msg revealFrameMsg) tea.Cmd {
	if msg.generation != v.generation {
		return nil
	}
	active := false
	changed := false
	for _, k := range v.keys {
		a := v.anims[k]
		if a.settled() {
			continue
		}
		if !a.step() {
			active = true
		}
		delete(v.cache, k)
		changed = true
	}
	if changed {
		v.compose()
	}
	if !active {
		v.ticking = false
		return nil
	}
	return revealFrameCmd(v.generation)
}

func (v *listView) animating() bool {
	for _, a := range v.anims {
		if !a.settled() {
			return true
		}
	}
	return false
}

// rows returns the current visual tree as rows.
func (v *listView) rows() []Row {
	rows := make([]Row, 0, len(v.keys)+1)
	rows = append(rows, Row{Kind: RowHeader, Index: -1, Content: v.header})
	for i, k := range v.keys {
		rows = append(rows, Row{Kind: RowCard, Key: k, Index: i, Content: v.card(k)})
	}
	return rows
}

func (v *listView) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

func (v *listView) view() string {
	return v.viewport.View()
}
