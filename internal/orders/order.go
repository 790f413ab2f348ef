// Package orders turns pointer clicks on a province map into one order per
// province and keeps a vector sketch of every order on a canvas layer.
//
// The package is single-threaded: hosts feed click events from their own
// update loop and every call runs to completion before the next one.
package orders

import "fmt"

// Kind tags the order variant.
type Kind int

const (
	KindHold Kind = iota
	KindCore
	KindMove
	KindConvoy
	KindSupport
)

func (k Kind) String() string {
	switch k {
	case KindHold:
		return "Hold"
	case KindCore:
		return "Core"
	case KindMove:
		return "Move"
	case KindConvoy:
		return "Convoy"
	case KindSupport:
		return "Support"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Order is the intent recorded for one origin province. Which fields are
// meaningful depends on Kind:
//
//	Hold, Core  Origin
//	Move        Origin, Destination
//	Convoy      Origin, Support (the convoyed unit), Destination
//	Support     Origin, Support (the supported unit), Destination
type Order struct {
	Kind        Kind
	Origin      string
	Support     string
	Destination string
	// Sync is set on a Support order whose drawing was swapped end-for-end to
	// line up with a reciprocal support-hold. Never cleared once set.
	Sync bool
}

func Hold(origin string) Order { return Order{Kind: KindHold, Origin: origin} }

func Core(origin string) Order { return Order{Kind: KindCore, Origin: origin} }

func Move(origin, destination string) Order {
	return Order{Kind: KindMove, Origin: origin, Destination: destination}
}

func Convoy(origin, support, destination string) Order {
	return Order{Kind: KindConvoy, Origin: origin, Support: support, Destination: destination}
}

func Support(origin, support, destination string) Order {
	return Order{Kind: KindSupport, Origin: origin, Support: support, Destination: destination}
}

// SupportsHold reports whether o is a support-to-hold.
func (o Order) SupportsHold() bool {
	return o.Kind == KindSupport && o.Support == o.Destination
}

// Line renders the order as one text panel line. ok is false for an
// unrecognised kind.
func (o Order) Line() (line string, ok bool) {
	switch o.Kind {
	case KindHold:
		return o.Origin + " Holds", true
	case KindCore:
		return o.Origin + " Cores", true
	case KindMove:
		return fmt.Sprintf("%s -> %s", o.Origin, o.Destination), true
	case KindConvoy:
		return fmt.Sprintf("%s Convoys %s -> %s", o.Origin, o.Support, o.Destination), true
	case KindSupport:
		if o.Support != o.Destination {
			return fmt.Sprintf("%s Supports %s -> %s", o.Origin, o.Support, o.Destination), true
		}
		return fmt.Sprintf("%s Supports %s Hold", o.Origin, o.Support), true
	default:
		return "", false
	}
}

func (o Order) String() string {
	if line, ok := o.Line(); ok {
		return line
	}
	return fmt.Sprintf("%s %s", o.Origin, o.Kind)
}
