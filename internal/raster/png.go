// Package raster draws the province markers and order glyphs into a PNG.
package raster

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
)

// Margin is the padding around the province bounding box, in map units.
const Margin = 40.0

// Options controls the output image.
type Options struct {
	Scale    float64 // pixels per map unit; 0 means 1
	FontSize float64 // label size in points; 0 means 11
	Lines    []string
}

// Sketch renders the board and prims onto a new context.
func Sketch(board *mapdata.Map, prims []orders.Primitive, opts Options) (*gg.Context, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 11
	}
	lo, hi := board.Bounds()
	w := int(math.Ceil((hi.X - lo.X + 2*Margin) * opts.Scale))
	h := int(math.Ceil((hi.Y - lo.Y + 2*Margin) * opts.Scale))

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	dc.Scale(opts.Scale, opts.Scale)
	dc.Translate(Margin-lo.X, Margin-lo.Y)

	r := board.Render.UnitRadius
	for _, name := range board.Names() {
		p := board.Provinces[name]
		dc.DrawCircle(p.X, p.Y, r*0.6)
		if p.Unit != mapdata.UnitNone {
			dc.SetRGB(0.4, 0.4, 0.4)
			dc.FillPreserve()
		}
		dc.SetRGB(0.6, 0.6, 0.6)
		dc.SetLineWidth(1)
		dc.Stroke()
		dc.SetRGB(0.27, 0.27, 0.27)
		dc.DrawString(name, p.X+r, p.Y-r)
	}

	dc.SetColor(color.Black)
	for _, p := range prims {
		drawPrimitive(dc, p)
	}

	if len(opts.Lines) > 0 {
		dc.Identity()
		dc.SetColor(color.Black)
		y := opts.FontSize * 1.5
		for _, line := range opts.Lines {
			dc.DrawString(line, 8, y)
			y += opts.FontSize * 1.2
		}
	}
	return dc, nil
}

// Encode writes the sketch as PNG.
func Encode(w io.Writer, board *mapdata.Map, prims []orders.Primitive, opts Options) error {
	dc, err := Sketch(board, prims, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// Save writes the sketch to a PNG file.
func Save(path string, board *mapdata.Map, prims []orders.Primitive, opts Options) error {
	dc, err := Sketch(board, prims, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save png: %w", err)
	}
	return nil
}

func drawPrimitive(dc *gg.Context, p orders.Primitive) {
	dc.SetLineWidth(p.StrokeWidth)
	if p.Dash > 0 {
		dc.SetDash(p.Dash, p.Dash)
	} else {
		dc.SetDash()
	}
	if p.RoundCap {
		dc.SetLineCapRound()
	} else {
		dc.SetLineCapButt()
	}

	switch p.Shape {
	case orders.ShapeCircle:
		dc.DrawCircle(p.Center.X, p.Center.Y, p.Radius)
		dc.Stroke()
	case orders.ShapeSquare:
		dc.Push()
		dc.RotateAbout(gg.Radians(p.Rotate), p.Center.X, p.Center.Y)
		dc.DrawRectangle(p.Center.X-p.Radius, p.Center.Y-p.Radius, 2*p.Radius, 2*p.Radius)
		dc.Stroke()
		dc.Pop()
	case orders.ShapeLine:
		dc.DrawLine(p.Start.X, p.Start.Y, p.End.X, p.End.Y)
		dc.Stroke()
		drawMarker(dc, p.MarkerEnd, p.Start, p.End, p.StrokeWidth)
	case orders.ShapeQuad:
		dc.MoveTo(p.Start.X, p.Start.Y)
		dc.QuadraticTo(p.Control.X, p.Control.Y, p.End.X, p.End.Y)
		dc.Stroke()
		// Marker direction follows the curve tangent at each end.
		drawMarker(dc, p.MarkerEnd, tangentFrom(p.Control, p.Start, p.End), p.End, p.StrokeWidth)
		drawMarker(dc, p.MarkerStart, tangentFrom(p.Control, p.End, p.Start), p.Start, p.StrokeWidth)
	}
	dc.SetDash()
}

// tangentFrom picks the point the curve arrives at tip from: the control
// point, or the far end when the control sits on the tip.
func tangentFrom(control, far, tip mapdata.Point) mapdata.Point {
	if control == tip {
		return far
	}
	return control
}

// drawMarker draws an arrowhead or ball at tip, sized to the stroke width
// the way the SVG markers are.
func drawMarker(dc *gg.Context, m orders.Marker, from, tip mapdata.Point, stroke float64) {
	switch m {
	case orders.MarkerBall:
		dc.SetDash()
		dc.DrawCircle(tip.X, tip.Y, 1.5*stroke)
		dc.Fill()
	case orders.MarkerArrow:
		dx := tip.X - from.X
		dy := tip.Y - from.Y
		length := math.Hypot(dx, dy)
		if length < 0.1 {
			return
		}
		dx /= length
		dy /= length
		size := 3 * stroke
		half := size / 2
		// Centre of the arrow sits on the tip, matching refX=1.5 on a 3-wide marker.
		baseX := tip.X - dx*half
		baseY := tip.Y - dy*half
		dc.SetDash()
		dc.MoveTo(tip.X+dx*half, tip.Y+dy*half)
		dc.LineTo(baseX+dy*half, baseY-dx*half)
		dc.LineTo(baseX-dy*half, baseY+dx*half)
		dc.ClosePath()
		dc.Fill()
	}
}
