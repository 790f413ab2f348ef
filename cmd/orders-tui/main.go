package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Garsondee/Order-Sketch/internal/config"
	"github.com/Garsondee/Order-Sketch/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	board, err := cfg.Board()
	if err != nil {
		config.Exitf("load map: %v", err)
	}

	p := tea.NewProgram(
		tui.New(cfg, board),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
