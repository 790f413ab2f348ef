package orders

import (
	"log"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
)

// Button identifies the pointer button of a click. Values follow the DOM
// MouseEvent.button numbering.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonAuxiliary:
		return "auxiliary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// ClickEvent is one pointer click on a province.
type ClickEvent struct {
	Button   Button
	Province string
	HasUnit  bool
}

// Router feeds click events into the machine's slots and refreshes the panel.
type Router struct {
	machine *Machine
	store   *Store
	panel   *Panel
	board   *mapdata.Map
	logger  *log.Logger
}

// NewRouter creates a router over an existing machine, store and panel.
func NewRouter(board *mapdata.Map, machine *Machine, store *Store, panel *Panel, logger *log.Logger) *Router {
	if logger == nil {
		logger = log.Default()
	}
	return &Router{machine: machine, store: store, panel: panel, board: board, logger: logger}
}

// Click dispatches a click, taking the unit flag from the map tables.
func (r *Router) Click(button Button, province string) bool {
	return r.Dispatch(ClickEvent{Button: button, Province: province, HasUnit: r.board.HasUnit(province)})
}

// Dispatch runs the slot for ev.Button. It reports whether a handler ran;
// unknown buttons are logged and unit-filtered clicks on empty provinces are
// dropped without any state change.
func (r *Router) Dispatch(ev ClickEvent) bool {
	var slot Slot
	switch ev.Button {
	case ButtonPrimary:
		slot = r.machine.Primary
	case ButtonSecondary:
		slot = r.machine.Secondary
	default:
		r.logger.Printf("orders: unknown button %d on %s", int(ev.Button), ev.Province)
		return false
	}
	if slot.Filter == FilterUnit && !ev.HasUnit {
		return false
	}
	r.machine.Handle(slot, ev.Province)
	r.panel.Rerender(r.store.Orders())
	return true
}
