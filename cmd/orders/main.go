package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Order-Sketch/internal/config"
	"github.com/Garsondee/Order-Sketch/internal/game"
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

	ebiten.SetWindowTitle("Order Sketch")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	if err := ebiten.RunGame(game.New(cfg, board)); err != nil {
		log.Fatal(err)
	}
}
