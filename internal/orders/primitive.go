package orders

import "github.com/Garsondee/Order-Sketch/internal/mapdata"

// Shape is the kind of vector element a Primitive describes.
type Shape int

const (
	ShapeCircle Shape = iota // Center, Radius
	ShapeSquare              // Center, Radius is the half side, Rotate in degrees
	ShapeLine                // Start, End
	ShapeQuad                // Start, Control, End
)

// Marker is the glyph at the end of a line or curve.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerArrow
	MarkerBall
)

func (m Marker) String() string {
	switch m {
	case MarkerArrow:
		return "arrow"
	case MarkerBall:
		return "ball"
	default:
		return ""
	}
}

// Primitive is one stroked vector element. Fill is always none.
type Primitive struct {
	Shape   Shape
	Center  mapdata.Point
	Radius  float64
	Rotate  float64
	Start   mapdata.Point
	Control mapdata.Point
	End     mapdata.Point

	StrokeWidth float64
	// Dash is the dash and gap length; zero draws a solid stroke.
	Dash        float64
	RoundCap    bool
	MarkerStart Marker
	MarkerEnd   Marker
}

// ElementID identifies an element appended to a Layer.
type ElementID int

// Layer is the canvas layer order glyphs are placed on.
type Layer interface {
	Append(p Primitive) ElementID
	Remove(id ElementID)
}
