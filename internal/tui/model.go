// Package tui is the terminal host for the order sketch. Provinces are
// projected onto the cell grid and mouse clicks are routed into an
// orders.Session the same way the window host does.
package tui

import (
	"fmt"
	"log"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Garsondee/Order-Sketch/internal/config"
	"github.com/Garsondee/Order-Sketch/internal/export"
	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
	"github.com/Garsondee/Order-Sketch/internal/svg"
)

const (
	panelWidth   = 42
	headerHeight = 1
	footerHeight = 1
	pickCells    = 3
	maxLogLines  = 6
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// logLines collects logger output for the panel.
type logLines struct {
	lines []string
}

func (l *logLines) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			l.lines = append(l.lines, line)
		}
	}
	if len(l.lines) > maxLogLines {
		l.lines = l.lines[len(l.lines)-maxLogLines:]
	}
	return len(p), nil
}

type Model struct {
	width  int
	height int

	cfg     config.Config
	board   *mapdata.Map
	doc     *svg.Document
	session *orders.Session
	log     *logLines
	logger  *log.Logger

	status string
}

// New builds a terminal host for board.
func New(cfg config.Config, board *mapdata.Map) Model {
	ll := &logLines{}
	logger := log.New(ll, "", 0)
	doc := svg.New(board.Render.Layer)
	return Model{
		cfg:     cfg,
		board:   board,
		doc:     doc,
		session: orders.NewSession(board, doc, orders.WithLogger(logger)),
		log:     ll,
		logger:  logger,
		status:  fmt.Sprintf("loaded %d provinces", len(board.Provinces)),
	}
}

// Session exposes the order session driven by the terminal.
func (m Model) Session() *orders.Session { return m.session }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "c":
			if err := export.Copy(m.session.Panel); err != nil {
				m.logger.Printf("clipboard: %v", err)
				m.status = "copy failed"
			} else {
				m.status = "orders copied to clipboard"
			}
		case "s":
			paths, err := export.Files(m.cfg.ExportDir, m.board, m.doc, m.session.Panel)
			if err != nil {
				m.logger.Printf("export: %v", err)
				m.status = "export failed"
			} else {
				m.status = "saved " + paths.SVG + " and " + paths.PNG
			}
		case "esc":
			m.session.Machine.Reset()
			m.status = "pending order cleared"
		}
	case tea.MouseMsg:
		button, ok := mouseButton(msg)
		if !ok {
			return m, nil
		}
		name, hit := m.pick(msg.X, msg.Y)
		if !hit {
			return m, nil
		}
		if m.session.Click(button, name) {
			m.status = fmt.Sprintf("%s on %s", button, name)
		}
	}
	return m, nil
}

// mouseButton maps a press event to a router button. Releases, motion and
// wheel events are not clicks.
func mouseButton(msg tea.MouseMsg) (orders.Button, bool) {
	switch msg.Type {
	case tea.MouseLeft:
		return orders.ButtonPrimary, true
	case tea.MouseMiddle:
		return orders.ButtonAuxiliary, true
	case tea.MouseRight:
		return orders.ButtonSecondary, true
	default:
		return 0, false
	}
}

// mapSize is the cell area available for the map.
func (m Model) mapSize() (int, int) {
	w := m.width - panelWidth - 1
	if w < 10 {
		w = 10
	}
	h := m.height - headerHeight - footerHeight
	if h < 4 {
		h = 4
	}
	return w, h
}

// project returns the map-relative cell of a board point.
func (m Model) project(p mapdata.Point) (int, int) {
	w, h := m.mapSize()
	lo, hi := m.board.Bounds()
	spanX := math.Max(hi.X-lo.X, 1)
	spanY := math.Max(hi.Y-lo.Y, 1)
	cx := int(math.Round((p.X - lo.X) / spanX * float64(w-1)))
	cy := int(math.Round((p.Y - lo.Y) / spanY * float64(h-1)))
	return cx, cy
}

// pick returns the province nearest to a screen cell, if one lies within
// pickCells. Rows count double since terminal cells are tall.
func (m Model) pick(x, y int) (string, bool) {
	w, h := m.mapSize()
	mx, my := x, y-headerHeight
	if mx < 0 || mx >= w || my < 0 || my >= h {
		return "", false
	}
	best := pickCells * pickCells
	hit := ""
	for _, name := range m.board.Names() {
		cx, cy := m.project(m.board.Provinces[name].Point())
		dx := cx - mx
		dy := 2 * (cy - my)
		if d := dx*dx + dy*dy; d <= best {
			best = d
			hit = name
		}
	}
	return hit, hit != ""
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := m.mapSize()

	header := titleStyle.Render(" order sketch ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	mapView := lipgloss.NewStyle().Width(w).Height(h).Render(m.renderMap(w, h))
	body := lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", m.renderPanel(h))

	help := dimStyle.Render(" [c] copy  [s] save  [esc] reset  [q] quit ")
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

func (m Model) renderPanel(h int) string {
	primary, _ := m.session.Machine.Pending()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Orders"))
	b.WriteString("\n")
	lines := m.session.Panel.Lines()
	if len(lines) == 0 {
		b.WriteString(dimStyle.Render("(none)"))
		b.WriteString("\n")
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("> " + primary.Step.String()))
	if len(m.log.lines) > 0 {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(strings.Join(m.log.lines, "\n")))
	}
	return boxStyle.Width(panelWidth - 2).MaxHeight(h).Render(b.String())
}
