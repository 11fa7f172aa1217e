package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akyairhashvil/coursecards/internal/catalog"
	"github.com/akyairhashvil/coursecards/internal/config"
	"github.com/akyairhashvil/coursecards/internal/savedstate"
	"github.com/akyairhashvil/coursecards/internal/tui"
	"github.com/akyairhashvil/coursecards/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

func main() {
	ctx := context.Background()

	// 1. Logging goes to a file; the terminal belongs to the UI.
	if closeLog := setupLogging(); closeLog != nil {
		defer closeLog()
	}

	supplier := catalog.Default()
	dark := lipgloss.HasDarkBackground()

	// 2. Without a terminal there is nothing to click: print the list once.
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		if err := printPreview(os.Stdout, supplier, dark); err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// 3. Saved state lives outside the visual tree for the life of the process.
	store, closeStore := openStore(ctx)
	defer closeStore()

	width, height, err := term.GetSize(fd)
	util.LogError("read terminal size", err)

	screen := tui.NewScreen(ctx, supplier, store, tui.ScreenOptions{
		Dark:   dark,
		Logo:   tui.DefaultLogo,
		Width:  width,
		Height: height,
	})

	// 4. Mouse support is the only way to toggle a card.
	p := tea.NewProgram(screen, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func setupLogging() func() {
	path, err := util.LogPath(config.AppName, config.LogFileName)
	if err == nil {
		var f *os.File
		if f, err = tea.LogToFile(path, config.AppName); err == nil {
			return func() { _ = f.Close() }
		}
	}
	log.SetOutput(io.Discard)
	return nil
}

// openStore prefers the SQLite store and falls back to memory when it
// cannot be opened.
func openStore(ctx context.Context) (savedstate.Store, func()) {
	s, err := savedstate.OpenSQLite(ctx, config.SavedStateDSN)
	if err != nil {
		util.LogError("open saved state", err)
		return savedstate.NewMemoryStore(), func() {}
	}
	return s, func() { util.LogError("close saved state", s.Close()) }
}

func printPreview(w io.Writer, supplier catalog.Supplier, dark bool) error {
	out := tui.PreviewList(supplier.Courses(), tui.DefaultLogo, dark, config.NonInteractiveWidth)
	_, err := fmt.Fprintln(w, out)
	return err
}
