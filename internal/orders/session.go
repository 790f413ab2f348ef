package orders

import (
	"log"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
)

// Session wires the renderer, store, machine, panel and router for one map
// and one canvas layer.
type Session struct {
	Board    *mapdata.Map
	Store    *Store
	Machine  *Machine
	Panel    *Panel
	Router   *Router
	Renderer *Renderer
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	logger   *log.Logger
	template TextBox
}

// WithLogger sends anomaly reports to logger instead of the standard logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *sessionConfig) { c.logger = logger }
}

// WithTemplate sets the panel template box.
func WithTemplate(box TextBox) Option {
	return func(c *sessionConfig) { c.template = box }
}

// NewSession builds a session and sketches a Hold glyph for every province in
// board.Immediate. The sketches are not orders.
func NewSession(board *mapdata.Map, layer Layer, opts ...Option) *Session {
	cfg := sessionConfig{logger: log.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	renderer := NewRenderer(board, cfg.logger)
	store := NewStore(layer, renderer)
	machine := NewMachine(board, store)
	panel := NewPanel(cfg.template, cfg.logger)
	s := &Session{
		Board:    board,
		Store:    store,
		Machine:  machine,
		Panel:    panel,
		Router:   NewRouter(board, machine, store, panel, cfg.logger),
		Renderer: renderer,
	}
	for _, name := range board.Immediate {
		store.Sketch(Hold(name))
	}
	return s
}

// Click forwards to the router.
func (s *Session) Click(button Button, province string) bool {
	return s.Router.Click(button, province)
}
