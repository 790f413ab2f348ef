package tui

import (
	"math"
	"strings"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
)

// grid is a fixed-size rune canvas.
type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]rune, h)}
	for y := range g.cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		g.cells[y] = row
	}
	return g
}

func (g *grid) set(x, y int, r rune) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y][x] = r
}

func (g *grid) text(x, y int, s string) {
	for i, r := range []rune(s) {
		g.set(x+i, y, r)
	}
}

// line plots a Bresenham line; dashed lines skip every other cell.
func (g *grid) line(x0, y0, x1, y1 int, r rune, dashed bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for i := 0; ; i++ {
		if !dashed || i%2 == 0 {
			g.set(x0, y0, r)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (g *grid) String() string {
	lines := make([]string, g.h)
	for y, row := range g.cells {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// arrowRune picks the arrowhead closest to the direction (dx, dy) in cells.
func arrowRune(dx, dy int) rune {
	if dx == 0 && dy == 0 {
		return '*'
	}
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	// Rows are about twice as tall as columns.
	ang := math.Atan2(float64(2*dy), float64(dx))
	idx := int(math.Round(ang/(math.Pi/4))+8) % 8
	return arrows[idx]
}

// renderMap draws order glyphs first and province markers on top.
func (m Model) renderMap(w, h int) string {
	g := newGrid(w, h)
	for _, p := range m.doc.Primitives() {
		m.plot(g, p)
	}
	for _, name := range m.board.Names() {
		prov := m.board.Provinces[name]
		x, y := m.project(prov.Point())
		g.set(x, y, provinceRune(prov))
		g.text(x+1, y, name)
	}
	return g.String()
}

func provinceRune(p mapdata.Province) rune {
	switch p.Unit {
	case mapdata.UnitArmy:
		return 'A'
	case mapdata.UnitFleet:
		return 'F'
	}
	if p.Terrain == mapdata.TerrainSea {
		return '~'
	}
	return '·'
}

func (m Model) plot(g *grid, p orders.Primitive) {
	dashed := p.Dash > 0
	switch p.Shape {
	case orders.ShapeCircle:
		x, y := m.project(p.Center)
		if dashed {
			g.set(x-1, y, '(')
			g.set(x+1, y, ')')
			return
		}
		g.set(x-1, y, '[')
		g.set(x+1, y, ']')
	case orders.ShapeSquare:
		x, y := m.project(p.Center)
		g.set(x-1, y, '<')
		g.set(x+1, y, '>')
	case orders.ShapeLine, orders.ShapeQuad:
		x0, y0 := m.project(p.Start)
		x1, y1 := m.project(p.End)
		ch := '·'
		if dashed {
			ch = '-'
		}
		if p.Shape == orders.ShapeQuad {
			cx, cy := m.project(p.Control)
			g.line(x0, y0, cx, cy, ch, dashed)
			g.line(cx, cy, x1, y1, ch, dashed)
			m.marker(g, p.MarkerEnd, cx, cy, x1, y1)
			m.marker(g, p.MarkerStart, cx, cy, x0, y0)
			return
		}
		g.line(x0, y0, x1, y1, ch, dashed)
		m.marker(g, p.MarkerEnd, x0, y0, x1, y1)
	}
}

func (m Model) marker(g *grid, mk orders.Marker, fromX, fromY, x, y int) {
	switch mk {
	case orders.MarkerArrow:
		g.set(x, y, arrowRune(x-fromX, y-fromY))
	case orders.MarkerBall:
		g.set(x, y, '●')
	}
}
