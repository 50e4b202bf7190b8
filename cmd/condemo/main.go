// Command condemo is a small interactive exercise of the condition
// enforcer: two mode toggles drive the sensitivity of two buttons and the
// visibility of a hint, and the layout is remembered across runs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fernwood/teakit/internal/config"
	"github.com/fernwood/teakit/recollect"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	var store *recollect.Store
	if cfg.UI.RememberLayout {
		if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "store dir:", err)
			os.Exit(1)
		}
		store, err = recollect.Open(cfg.Store.Path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "store:", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	m, err := newModel(cfg, store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "setup:", err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
