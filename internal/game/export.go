package game

import (
	"github.com/Garsondee/Order-Sketch/internal/export"
)

func (g *Game) copyOrders() {
	if err := export.Copy(g.session.Panel); err != nil {
		g.logger.Printf("clipboard: %v", err)
		return
	}
	g.events.Add("orders copied to clipboard")
}

func (g *Game) saveFiles() {
	paths, err := export.Files(g.cfg.ExportDir, g.board, g.doc, g.session.Panel)
	if err != nil {
		g.logger.Printf("export: %v", err)
		return
	}
	g.logger.Printf("saved %s and %s", paths.SVG, paths.PNG)
}
