package game

import (
	"math"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
)

// borderWidth is the pixel gap between the window edge and the map.
const borderWidth = 24

// pickRadius is the click radius around a province centre, in screen pixels.
const pickRadius = 16.0

// viewport maps board coordinates onto the map area of the window.
type viewport struct {
	scale float64
	offX  float64 // screen x of board x = lo.X
	offY  float64
	lo    mapdata.Point
}

// fitViewport scales the board bounds into a w×h area, keeping the aspect ratio.
func fitViewport(board *mapdata.Map, w, h int) viewport {
	lo, hi := board.Bounds()
	spanX := math.Max(hi.X-lo.X, 1)
	spanY := math.Max(hi.Y-lo.Y, 1)
	availW := float64(w - 2*borderWidth)
	availH := float64(h - 2*borderWidth)
	scale := math.Min(availW/spanX, availH/spanY)
	if scale <= 0 {
		scale = 1
	}
	return viewport{
		scale: scale,
		offX:  borderWidth + (availW-spanX*scale)/2,
		offY:  borderWidth + (availH-spanY*scale)/2,
		lo:    lo,
	}
}

// toScreen converts a board point to screen pixels.
func (v viewport) toScreen(p mapdata.Point) (float32, float32) {
	return float32(v.offX + (p.X-v.lo.X)*v.scale), float32(v.offY + (p.Y-v.lo.Y)*v.scale)
}

// toBoard is the inverse of toScreen.
func (v viewport) toBoard(sx, sy int) mapdata.Point {
	return mapdata.Point{
		X: (float64(sx)-v.offX)/v.scale + v.lo.X,
		Y: (float64(sy)-v.offY)/v.scale + v.lo.Y,
	}
}

// length converts a board distance to pixels.
func (v viewport) length(d float64) float32 {
	return float32(d * v.scale)
}

// pickProvince returns the province nearest to the click, if one lies within
// pickRadius screen pixels.
func (v viewport) pickProvince(board *mapdata.Map, sx, sy int) (string, bool) {
	w := v.toBoard(sx, sy)
	clickRadius := pickRadius / v.scale
	// Avoid sqrt by comparing squared distances to the squared click radius.
	best2 := clickRadius * clickRadius
	hit := ""
	for _, name := range board.Names() {
		p := board.Provinces[name]
		dx := p.X - w.X
		dy := p.Y - w.Y
		d2 := dx*dx + dy*dy
		if d2 <= best2 {
			best2 = d2
			hit = name
		}
	}
	return hit, hit != ""
}
