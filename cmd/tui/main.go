package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ecoaliados/internal/config"
	"ecoaliados/internal/leaderboard"
	"ecoaliados/internal/storage"
	"ecoaliados/internal/tui"
	"ecoaliados/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("ECOALIADOS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Log to a file; the terminal belongs to the TUI
	logger.Init(cfg.Logging)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	generator := leaderboard.New(nil, leaderboard.WithVariance(cfg.Leaderboard.Variance))

	model, err := tui.NewModel(store, generator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting app: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
