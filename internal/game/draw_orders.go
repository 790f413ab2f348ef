package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
)

// curveSteps is the number of segments a quadratic curve is flattened into.
const curveSteps = 32

var orderInk = color.RGBA{R: 15, G: 15, B: 15, A: 255}

// drawPrimitive strokes one order glyph in screen space.
func (g *Game) drawPrimitive(screen *ebiten.Image, p orders.Primitive) {
	v := g.view
	width := v.length(p.StrokeWidth)
	if width < 1 {
		width = 1
	}
	dash := v.length(p.Dash)

	switch p.Shape {
	case orders.ShapeCircle:
		cx, cy := v.toScreen(p.Center)
		r := v.length(p.Radius)
		if dash > 0 {
			strokePolyline(screen, circlePoints(cx, cy, r), width, dash)
		} else {
			vector.StrokeCircle(screen, cx, cy, r, width, orderInk, true)
		}
	case orders.ShapeSquare:
		cx, cy := v.toScreen(p.Center)
		pts := squarePoints(cx, cy, v.length(p.Radius), p.Rotate)
		strokePolyline(screen, pts, width, dash)
	case orders.ShapeLine:
		sx, sy := v.toScreen(p.Start)
		ex, ey := v.toScreen(p.End)
		strokePolyline(screen, [][2]float32{{sx, sy}, {ex, ey}}, width, dash)
		drawMarker(screen, p.MarkerEnd, [2]float32{sx, sy}, [2]float32{ex, ey}, width)
	case orders.ShapeQuad:
		pts := quadPoints(v, p.Start, p.Control, p.End)
		strokePolyline(screen, pts, width, dash)
		n := len(pts)
		drawMarker(screen, p.MarkerEnd, pts[n-2], pts[n-1], width)
		drawMarker(screen, p.MarkerStart, pts[1], pts[0], width)
	}
}

// quadPoints flattens a quadratic Bézier into screen points.
func quadPoints(v viewport, start, control, end mapdata.Point) [][2]float32 {
	pts := make([][2]float32, 0, curveSteps+1)
	for i := 0; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		p := mapdata.Point{
			X: u*u*start.X + 2*u*t*control.X + t*t*end.X,
			Y: u*u*start.Y + 2*u*t*control.Y + t*t*end.Y,
		}
		x, y := v.toScreen(p)
		pts = append(pts, [2]float32{x, y})
	}
	return pts
}

func circlePoints(cx, cy, r float32) [][2]float32 {
	const steps = 48
	pts := make([][2]float32, 0, steps+1)
	for a := 0; a <= steps; a++ {
		ang := float64(a) / steps * 2 * math.Pi
		pts = append(pts, [2]float32{cx + r*float32(math.Cos(ang)), cy + r*float32(math.Sin(ang))})
	}
	return pts
}

// squarePoints returns the closed outline of a square with half side r
// rotated by deg degrees.
func squarePoints(cx, cy, r float32, deg float64) [][2]float32 {
	rad := deg * math.Pi / 180
	corners := [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	pts := make([][2]float32, 0, len(corners))
	for _, c := range corners {
		x := c[0]*math.Cos(rad) - c[1]*math.Sin(rad)
		y := c[0]*math.Sin(rad) + c[1]*math.Cos(rad)
		pts = append(pts, [2]float32{cx + r*float32(x), cy + r*float32(y)})
	}
	return pts
}

// strokePolyline draws the polyline, dashed with equal dash and gap when
// dash > 0. The dash phase carries across segment joins.
func strokePolyline(screen *ebiten.Image, pts [][2]float32, width, dash float32) {
	on := true
	left := dash
	for i := 1; i < len(pts); i++ {
		x1, y1 := pts[i-1][0], pts[i-1][1]
		x2, y2 := pts[i][0], pts[i][1]
		if dash <= 0 {
			vector.StrokeLine(screen, x1, y1, x2, y2, width, orderInk, true)
			continue
		}
		dx, dy := x2-x1, y2-y1
		segLen := float32(math.Hypot(float64(dx), float64(dy)))
		if segLen == 0 {
			continue
		}
		ndx, ndy := dx/segLen, dy/segLen
		drawn := float32(0)
		for drawn < segLen {
			step := left
			if drawn+step > segLen {
				step = segLen - drawn
			}
			if on {
				vector.StrokeLine(screen,
					x1+ndx*drawn, y1+ndy*drawn,
					x1+ndx*(drawn+step), y1+ndy*(drawn+step),
					width, orderInk, true)
			}
			drawn += step
			left -= step
			if left <= 0 {
				on = !on
				left = dash
			}
		}
	}
}

// drawMarker draws an arrowhead or ball at tip, pointing away from from.
func drawMarker(screen *ebiten.Image, m orders.Marker, from, tip [2]float32, width float32) {
	switch m {
	case orders.MarkerBall:
		vector.FillCircle(screen, tip[0], tip[1], 1.5*width, orderInk, true)
	case orders.MarkerArrow:
		dx := tip[0] - from[0]
		dy := tip[1] - from[1]
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length < 0.1 {
			return
		}
		dx /= length
		dy /= length
		half := 1.5 * width
		bx, by := tip[0]-dx*half, tip[1]-dy*half

		var path vector.Path
		path.MoveTo(tip[0]+dx*half, tip[1]+dy*half)
		path.LineTo(bx+dy*half, by-dx*half)
		path.LineTo(bx-dy*half, by+dx*half)
		path.Close()
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(orderInk)
		vector.FillPath(screen, &path, &vector.FillOptions{}, op)
	}
}
