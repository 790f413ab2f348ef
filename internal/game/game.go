// Package game is the ebiten window host for the order sketch: it draws the
// board and order glyphs and routes mouse clicks into an orders.Session.
package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Order-Sketch/internal/config"
	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
	"github.com/Garsondee/Order-Sketch/internal/svg"
)

// panelWidth is the width of the right-hand text and log column.
const panelWidth = 360

// mouseButtons maps ebiten buttons to router button values.
var mouseButtons = []struct {
	mouse  ebiten.MouseButton
	button orders.Button
}{
	{ebiten.MouseButtonLeft, orders.ButtonPrimary},
	{ebiten.MouseButtonMiddle, orders.ButtonAuxiliary},
	{ebiten.MouseButtonRight, orders.ButtonSecondary},
}

var (
	boardColor   = color.RGBA{R: 236, G: 232, B: 220, A: 255}
	landColor    = color.RGBA{R: 120, G: 150, B: 90, A: 255}
	seaColor     = color.RGBA{R: 70, G: 110, B: 170, A: 255}
	unitColor    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	labelBgColor = color.RGBA{R: 18, G: 20, B: 18, A: 255}
	borderColor  = color.RGBA{R: 65, G: 90, B: 65, A: 255}
)

// dotRadiusFrac sizes province dots relative to the unit radius.
const dotRadiusFrac = 0.6

type Game struct {
	cfg     config.Config
	board   *mapdata.Map
	doc     *svg.Document
	session *orders.Session
	events  *EventLog
	logger  *log.Logger

	width    int
	height   int
	mapWidth int
	view     viewport

	prevMouse map[ebiten.MouseButton]bool
	prevKeys  map[ebiten.Key]bool
}

// New builds a window host for board. Logger output from the order session
// goes to the on-screen event log.
func New(cfg config.Config, board *mapdata.Map) *Game {
	events := NewEventLog()
	logger := log.New(events, "", 0)
	doc := svg.New(board.Render.Layer)
	g := &Game{
		cfg:       cfg,
		board:     board,
		doc:       doc,
		session:   orders.NewSession(board, doc, orders.WithLogger(logger)),
		events:    events,
		logger:    logger,
		width:     cfg.WindowWidth,
		height:    cfg.WindowHeight,
		mapWidth:  cfg.WindowWidth - panelWidth,
		prevMouse: make(map[ebiten.MouseButton]bool),
		prevKeys:  make(map[ebiten.Key]bool),
	}
	g.view = fitViewport(board, g.mapWidth, g.height)
	events.Add(fmt.Sprintf("loaded %d provinces", len(board.Provinces)))
	return g
}

// Session exposes the order session driven by the window.
func (g *Game) Session() *orders.Session {
	return g.session
}

func (g *Game) Update() error {
	g.handleInput()
	return nil
}

func (g *Game) handleInput() {
	for _, mb := range mouseButtons {
		pressed := ebiten.IsMouseButtonPressed(mb.mouse)
		if pressed && !g.prevMouse[mb.mouse] {
			mx, my := ebiten.CursorPosition()
			g.click(mb.button, mx, my)
		}
		g.prevMouse[mb.mouse] = pressed
	}

	currentKeys := make(map[ebiten.Key]bool)
	for _, k := range []ebiten.Key{ebiten.KeyC, ebiten.KeyS, ebiten.KeyEscape} {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if !currentKeys[k] || g.prevKeys[k] {
			continue
		}
		switch k {
		case ebiten.KeyC:
			g.copyOrders()
		case ebiten.KeyS:
			g.saveFiles()
		case ebiten.KeyEscape:
			g.session.Machine.Reset()
			g.events.Add("pending order cleared")
		}
	}
	g.prevKeys = currentKeys
}

// click routes a screen-space click to the province under the cursor.
// Clicks that miss every province are dropped.
func (g *Game) click(button orders.Button, sx, sy int) bool {
	if sx >= g.mapWidth {
		return false
	}
	name, ok := g.view.pickProvince(g.board, sx, sy)
	if !ok {
		return false
	}
	return g.session.Click(button, name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(labelBgColor)
	vector.FillRect(screen, borderWidth, borderWidth,
		float32(g.mapWidth-2*borderWidth), float32(g.height-2*borderWidth), boardColor, false)
	vector.StrokeRect(screen, borderWidth-1, borderWidth-1,
		float32(g.mapWidth-2*borderWidth+2), float32(g.height-2*borderWidth+2), 2.0, borderColor, false)

	g.drawProvinces(screen)
	for _, p := range g.doc.Primitives() {
		g.drawPrimitive(screen, p)
	}

	primary, _ := g.session.Machine.Pending()
	ebitenutil.DebugPrintAt(screen, primary.Step.String(), borderWidth+6, borderWidth+6)

	g.drawPanel(screen)
}

func (g *Game) drawProvinces(screen *ebiten.Image) {
	r := g.view.length(g.board.Render.UnitRadius * dotRadiusFrac)
	for _, name := range g.board.Names() {
		p := g.board.Provinces[name]
		x, y := g.view.toScreen(p.Point())
		c := landColor
		if p.Terrain == mapdata.TerrainSea {
			c = seaColor
		}
		if p.Unit != mapdata.UnitNone {
			vector.FillCircle(screen, x, y, r, unitColor, true)
		}
		vector.StrokeCircle(screen, x, y, r, 1.5, c, true)
		ebitenutil.DebugPrintAt(screen, name, int(x+r)+2, int(y-r)-14)
	}
}

// drawPanel renders the order text panel above the event log.
func (g *Game) drawPanel(screen *ebiten.Image) {
	x := g.mapWidth
	vector.FillRect(screen, float32(x), 0, panelWidth, float32(g.height/2), color.RGBA{R: 14, G: 16, B: 14, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "ORDERS  [C] copy  [S] save  [Esc] reset", x+8, 4)
	y := 24
	for _, line := range g.session.Panel.Lines() {
		ebitenutil.DebugPrintAt(screen, line, x+8, y)
		y += logLineHeight
	}
	g.events.Draw(screen, x, g.height/2, panelWidth, g.height-g.height/2)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
