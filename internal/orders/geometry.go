package orders

import (
	"math"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
)

// DefaultLimit caps a pull at a quarter of the segment length.
const DefaultLimit = 0.25

// DefaultPull is the standard pull distance for a given unit glyph radius.
func DefaultPull(unitRadius float64) float64 {
	return 1.5 * unitRadius
}

// PullPoint moves point toward anchor by min(pull, |anchor-point| * limit).
// It keeps arrowheads and curve ends clear of a unit glyph drawn at point
// without collapsing short segments. anchor == point returns point.
func PullPoint(anchor, point mapdata.Point, pull, limit float64) mapdata.Point {
	dx := anchor.X - point.X
	dy := anchor.Y - point.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return point
	}
	pull = math.Min(pull, dist*limit)
	scale := pull / dist
	return mapdata.Point{X: point.X + dx*scale, Y: point.Y + dy*scale}
}

func distance(a, b mapdata.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
