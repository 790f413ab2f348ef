package orders

import (
	"log"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
)

// Lookup returns the order currently stored for an origin.
type Lookup func(origin string) (Order, bool)

// Renderer converts orders into primitives positioned on the map.
type Renderer struct {
	board  *mapdata.Map
	logger *log.Logger
}

// NewRenderer creates a renderer for board.
func NewRenderer(board *mapdata.Map, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{board: board, logger: logger}
}

// Render returns the primitives for o. Rendering a support-to-hold may set
// o.Sync, so o is taken by pointer; lookup resolves the orders already on
// the board. A province missing from the coordinate table yields nothing.
func (r *Renderer) Render(o *Order, lookup Lookup) []Primitive {
	switch o.Kind {
	case KindHold:
		return r.hold(o)
	case KindCore:
		return r.core(o)
	case KindMove:
		return r.move(o)
	case KindConvoy:
		return r.convoy(o)
	case KindSupport:
		return r.support(o, lookup)
	default:
		r.logger.Printf("orders: cannot draw unknown order kind %s for %s", o.Kind, o.Origin)
		return nil
	}
}

func (r *Renderer) coord(name string) (mapdata.Point, bool) {
	p, ok := r.board.Coordinate(name)
	if !ok {
		r.logger.Printf("orders: no coordinate for province %q", name)
	}
	return p, ok
}

func (r *Renderer) radius() float64 { return r.board.Render.UnitRadius }

func (r *Renderer) stroke() float64 { return r.board.Render.OrderStrokeWidth }

func (r *Renderer) hold(o *Order) []Primitive {
	c, ok := r.coord(o.Origin)
	if !ok {
		return nil
	}
	return []Primitive{{
		Shape:       ShapeCircle,
		Center:      c,
		Radius:      r.radius(),
		StrokeWidth: r.stroke(),
	}}
}

func (r *Renderer) core(o *Order) []Primitive {
	c, ok := r.coord(o.Origin)
	if !ok {
		return nil
	}
	return []Primitive{{
		Shape:       ShapeSquare,
		Center:      c,
		Radius:      r.radius(),
		Rotate:      45,
		StrokeWidth: r.stroke(),
	}}
}

func (r *Renderer) move(o *Order) []Primitive {
	start, ok := r.coord(o.Origin)
	if !ok {
		return nil
	}
	end, ok := r.coord(o.Destination)
	if !ok {
		return nil
	}
	if r.board.HasUnit(o.Destination) {
		end = PullPoint(start, end, DefaultPull(r.radius()), DefaultLimit)
	}
	return []Primitive{{
		Shape:       ShapeLine,
		Start:       start,
		End:         end,
		StrokeWidth: r.stroke(),
		RoundCap:    true,
		MarkerEnd:   MarkerArrow,
	}}
}

func (r *Renderer) convoy(o *Order) []Primitive {
	c, ok := r.coord(o.Origin)
	if !ok {
		return nil
	}
	return []Primitive{{
		Shape:       ShapeCircle,
		Center:      c,
		Radius:      r.radius() / 2,
		StrokeWidth: r.stroke() * 2 / 3,
	}}
}

// support draws a dashed quadratic curve through the supported province.
// A support-to-hold whose held province already supports it back is drawn
// reversed so the two dash patterns meet in phase.
func (r *Renderer) support(o *Order, lookup Lookup) []Primitive {
	start, ok := r.coord(o.Origin)
	if !ok {
		return nil
	}
	control, ok := r.coord(o.Support)
	if !ok {
		return nil
	}
	end, ok := r.coord(o.Destination)
	if !ok {
		return nil
	}
	held := end
	holds := o.SupportsHold()
	dash := 2.5 * r.stroke()

	markerStart, markerEnd := MarkerNone, MarkerArrow
	if holds {
		markerEnd = MarkerBall
		if r.reciprocal(o, lookup) {
			o.Sync = true
			markerStart, markerEnd = MarkerBall, MarkerNone
			start, end = control, start
			control = end
		}
	}

	if r.board.HasUnit(o.Destination) {
		if holds {
			end = PullPoint(start, end, r.radius(), DefaultLimit)
			control = end
		} else {
			end = PullPoint(control, end, DefaultPull(r.radius()), DefaultLimit)
		}
	}
	start = PullPoint(control, start, r.radius(), DefaultLimit)

	prims := []Primitive{{
		Shape:       ShapeQuad,
		Start:       start,
		Control:     control,
		End:         end,
		StrokeWidth: r.stroke(),
		Dash:        dash,
		RoundCap:    true,
		MarkerStart: markerStart,
		MarkerEnd:   markerEnd,
	}}
	if holds {
		prims = append(prims, Primitive{
			Shape:       ShapeCircle,
			Center:      held,
			Radius:      r.radius(),
			StrokeWidth: r.stroke(),
			Dash:        dash * 2 / 3,
			RoundCap:    true,
		})
	}
	return prims
}

// reciprocal reports whether the held province carries an unsynced
// support-hold back onto o's origin.
func (r *Renderer) reciprocal(o *Order, lookup Lookup) bool {
	if lookup == nil {
		return false
	}
	other, ok := lookup(o.Destination)
	if !ok || other.Kind != KindSupport || other.Origin == o.Origin {
		return false
	}
	return other.Destination == o.Origin && other.Support == o.Origin && !other.Sync
}
