package orders

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPullPoint_FullPull(t *testing.T) {
	got := PullPoint(pt(0, 0), pt(100, 0), DefaultPull(10), DefaultLimit)
	require.InDelta(t, 85, got.X, 1e-9)
	require.InDelta(t, 0, got.Y, 1e-9)
}

func TestPullPoint_LimitedToQuarter(t *testing.T) {
	// 15 would overshoot a quarter of a 10-unit segment.
	got := PullPoint(pt(0, 0), pt(10, 0), DefaultPull(10), DefaultLimit)
	require.InDelta(t, 7.5, got.X, 1e-9)
}

func TestPullPoint_Degenerate(t *testing.T) {
	a := pt(4, -2)
	require.Equal(t, a, PullPoint(a, a, DefaultPull(10), DefaultLimit))
}

func TestPullPoint_StaysBetween(t *testing.T) {
	const pull = 15.0
	anchors := [][2]float64{{0, 0}, {3, 4}, {-50, 20}, {100, 100}}
	points := [][2]float64{{10, 0}, {0, 200}, {-7, -7}, {101, 100}, {60, 25}}
	for _, a := range anchors {
		for _, p := range points {
			anchor, point := pt(a[0], a[1]), pt(p[0], p[1])
			before := distance(anchor, point)
			got := PullPoint(anchor, point, pull, DefaultLimit)
			after := distance(anchor, got)

			require.Less(t, after, before, "anchor=%v point=%v", anchor, point)
			require.GreaterOrEqual(t, after+1e-9, before-pull)
			require.LessOrEqual(t, distance(point, got), before*DefaultLimit+1e-9)

			// Pulled point stays on the segment.
			cross := (point.X-anchor.X)*(got.Y-anchor.Y) - (point.Y-anchor.Y)*(got.X-anchor.X)
			require.InDelta(t, 0, cross, 1e-6)
		}
	}
}

func TestPullPoint_CustomPull(t *testing.T) {
	got := PullPoint(pt(0, 0), pt(0, 100), 10, DefaultLimit)
	require.InDelta(t, 90, got.Y, 1e-9)
	require.False(t, math.IsNaN(got.X))
}
