package orders

import (
	"fmt"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
)

// Filter decides which clicks a slot accepts.
type Filter int

const (
	// FilterUnit ignores clicks on provinces without a resident unit.
	FilterUnit Filter = iota
	// FilterProvince accepts any province.
	FilterProvince
)

func (f Filter) String() string {
	if f == FilterProvince {
		return "province"
	}
	return "unit"
}

// StepKind tags what a slot does with the next click.
type StepKind int

const (
	StepBeginOrder              StepKind = iota // primary entry: Move or Support from the clicked unit
	StepBeginAlternate                          // secondary entry: Core, Convoy or the Hold toggle
	StepAwaitDestination                        // Origin
	StepAwaitSupportOrigin                      // Origin
	StepAwaitSupportDestination                 // Origin, Support
	StepAwaitConvoySupport                      // Origin
	StepAwaitConvoyDestination                  // Origin, Support
)

// Step is the pending continuation held by a slot.
type Step struct {
	Kind    StepKind
	Origin  string
	Support string
}

func (s Step) String() string {
	switch s.Kind {
	case StepBeginOrder:
		return "select a unit"
	case StepBeginAlternate:
		return "core, convoy or hold"
	case StepAwaitDestination:
		return fmt.Sprintf("%s: move to", s.Origin)
	case StepAwaitSupportOrigin:
		return fmt.Sprintf("%s: support which unit", s.Origin)
	case StepAwaitSupportDestination:
		return fmt.Sprintf("%s: support %s into", s.Origin, s.Support)
	case StepAwaitConvoySupport:
		return fmt.Sprintf("%s: convoy which unit", s.Origin)
	case StepAwaitConvoyDestination:
		return fmt.Sprintf("%s: convoy %s to", s.Origin, s.Support)
	default:
		return fmt.Sprintf("StepKind(%d)", int(s.Kind))
	}
}

// Slot is one button's pending step and click filter.
type Slot struct {
	Step   Step
	Filter Filter
}

var (
	defaultPrimary   = Slot{Step: Step{Kind: StepBeginOrder}, Filter: FilterUnit}
	defaultSecondary = Slot{Step: Step{Kind: StepBeginAlternate}, Filter: FilterUnit}
)

// Machine is the click interpretation state: exactly two live slots shared by
// every province. Starting a new sequence overwrites whatever was pending.
type Machine struct {
	Primary   Slot
	Secondary Slot

	board *mapdata.Map
	store *Store
}

// NewMachine creates a machine in its default state.
func NewMachine(board *mapdata.Map, store *Store) *Machine {
	m := &Machine{board: board, store: store}
	m.Reset()
	return m
}

// Reset restores both default entry slots.
func (m *Machine) Reset() {
	m.Primary = defaultPrimary
	m.Secondary = defaultSecondary
}

// Pending returns the primary and secondary slots.
func (m *Machine) Pending() (primary, secondary Slot) {
	return m.Primary, m.Secondary
}

// Idle reports whether no sequence is in progress.
func (m *Machine) Idle() bool {
	return m.Primary == defaultPrimary && m.Secondary == defaultSecondary
}

// Handle runs the step held by slot with the clicked province. Only
// completion steps write to the store.
func (m *Machine) Handle(slot Slot, province string) {
	step := slot.Step
	switch step.Kind {
	case StepBeginOrder:
		m.beginOrder(province)
	case StepBeginAlternate:
		m.beginAlternate(province)
	case StepAwaitDestination:
		m.finish(Move(step.Origin, m.destination(step.Origin, province)))
	case StepAwaitSupportOrigin:
		next := Slot{
			Step:   Step{Kind: StepAwaitSupportDestination, Origin: step.Origin, Support: province},
			Filter: FilterProvince,
		}
		m.Primary, m.Secondary = next, next
	case StepAwaitSupportDestination:
		m.finish(Support(step.Origin, step.Support, m.destination(step.Origin, province)))
	case StepAwaitConvoySupport:
		next := Slot{
			Step:   Step{Kind: StepAwaitConvoyDestination, Origin: step.Origin, Support: province},
			Filter: FilterProvince,
		}
		m.Primary, m.Secondary = next, next
	case StepAwaitConvoyDestination:
		// A convoy also orders the convoyed unit.
		m.store.SetOrder(Move(step.Support, province))
		m.finish(Convoy(step.Origin, step.Support, province))
	}
}

func (m *Machine) beginOrder(origin string) {
	m.Primary = Slot{Step: Step{Kind: StepAwaitDestination, Origin: origin}, Filter: FilterProvince}
	m.Secondary = Slot{Step: Step{Kind: StepAwaitSupportOrigin, Origin: origin}, Filter: FilterUnit}
}

func (m *Machine) beginAlternate(origin string) {
	if o, ok := m.store.Get(origin); ok && (o.Kind == KindCore || o.Kind == KindConvoy) {
		m.finish(Hold(origin))
		return
	}
	if m.board.Terrain(origin) == mapdata.TerrainSea {
		next := Slot{Step: Step{Kind: StepAwaitConvoySupport, Origin: origin}, Filter: FilterUnit}
		m.Primary, m.Secondary = next, next
		return
	}
	m.finish(Core(origin))
}

// destination sends an army that targets a coast indicator to the parent
// province instead.
func (m *Machine) destination(origin, dest string) string {
	if m.board.UnitType(origin) != mapdata.UnitArmy {
		return dest
	}
	if parent, ok := m.board.Parent(dest); ok {
		return parent
	}
	return dest
}

func (m *Machine) finish(o Order) {
	m.store.SetOrder(o)
	m.Reset()
}
