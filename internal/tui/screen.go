package tui

import (
	"context"
	"strings"

	"github.com/akyairhashvil/coursecards/internal/catalog"
	"github.com/akyairhashvil/coursecards/internal/config"
	"github.com/akyairhashvil/coursecards/internal/models"
	"github.com/akyairhashvil/coursecards/internal/savedstate"
	"github.com/akyairhashvil/coursecards/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ScreenOptions carries the host collaborators the screen forwards to its views.
type ScreenOptions struct {
	Dark   bool
	Logo   Logo
	Width  int
	Height int
}

// Screen is the root bubbletea model: one logical screen session showing the
// catalog as expandable cards.
type Screen struct {
	ctx        context.Context
	session    uuid.UUID
	store      savedstate.Store
	courses    []models.Course
	keys       []models.ItemKey
	theme      Theme
	logo       Logo
	list       *listView
	generation int
	width      int
	height     int
}

// NewScreen reads the catalog once and builds the first visual tree.
func NewScreen(ctx context.Context, supplier catalog.Supplier, store savedstate.Store, opts ScreenOptions) Screen {
	if store == nil {
		store = savedstate.NewMemoryStore()
	}
	courses := supplier.Courses()
	m := Screen{
		ctx:     ctx,
		session: uuid.New(),
		store:   store,
		courses: courses,
		keys:    models.ItemKeys(courses),
		theme:   ResolveTheme(opts.Dark),
		logo:    opts.Logo,
		width:   opts.Width,
		height:  opts.Height,
	}
	if m.width <= 0 {
		m.width = config.DefaultWidth
	}
	if m.height <= 0 {
		m.height = config.DefaultHeight
	}
	m.list = newListView(m.generation, m.courses, m.keys, NewExpansionState(), m.theme, m.width, m.listHeight())
	return m
}

func (m Screen) Init() tea.Cmd { return nil }

func (m Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.reconstruct()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.discard()
			return m, tea.Quit
		}
		return m, m.list.update(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if key, ok := m.list.cardAt(msg.Y - config.LogoHeight); ok {
				return m, m.list.toggle(key)
			}
			return m, nil
		}
		return m, m.list.update(msg)
	case revealFrameMsg:
		return m, m.list.frame(msg)
	}
	return m, nil
}

func (m Screen) View() string {
	var b strings.Builder
	if config.LogoHeight > 0 {
		b.WriteString(m.logo.Render(m.theme, m.width, config.LogoHeight))
		b.WriteString("\n")
	}
	b.WriteString(m.list.view())
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render(util.Truncate(config.QuitHelp, m.width, "…")))
	return b.String()
}

// Reconstruct tears down and rebuilds the visual tree the way a resize does.
func (m Screen) Reconstruct() Screen {
	m.reconstruct()
	return m
}

// Toggle flips the card for key as a click on it would.
func (m Screen) Toggle(key models.ItemKey) (Screen, tea.Cmd) {
	return m, m.list.toggle(key)
}

// IsExpanded reports the current flag of the card for key.
func (m Screen) IsExpanded(key models.ItemKey) bool {
	return m.list.state.IsExpanded(key)
}

// Keys returns the identity of every card in catalog order.
func (m Screen) Keys() []models.ItemKey {
	return append([]models.ItemKey(nil), m.keys...)
}

// Rows returns the header and cards as currently drawn.
func (m Screen) Rows() []Row {
	return m.list.rows()
}

// Session identifies this screen instance in the saved-state store.
func (m Screen) Session() uuid.UUID { return m.session }

func (m Screen) listHeight() int {
	h := m.height - config.LogoHeight - config.FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}

// reconstruct saves the expansion flags outside the visual tree, discards
// the tree and rebuilds it from the catalog and the saved flags.
func (m *Screen) reconstruct() {
	snapshot := m.list.state.Snapshot()
	flags := snapshot
	if err := m.store.Save(m.ctx, m.session, snapshot); err != nil {
		util.LogError("save expansion state", err)
	} else if restored, err := m.store.Restore(m.ctx, m.session); err != nil {
		util.LogError("restore expansion state", err)
	} else {
		flags = restored
	}
	yOffset := m.list.viewport.YOffset

	m.generation++
	m.list = newListView(m.generation, m.courses, m.keys, RestoreExpansionState(flags, m.keys), m.theme, m.width, m.listHeight())
	m.list.viewport.SetYOffset(yOffset)
}

func (m Screen) discard() {
	util.LogError("discard expansion state", m.store.Discard(m.ctx, m.session))
}
