package orders

import (
	"bytes"
	"log"
	"testing"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
)

// boardOption is a builder function applied to a test board.
type boardOption func(*mapdata.Map)

// newTestBoard builds a map with unit radius 10 and stroke width 3.
func newTestBoard(opts ...boardOption) *mapdata.Map {
	m := &mapdata.Map{
		Render: mapdata.RenderConfig{
			UnitRadius:       10,
			OrderStrokeWidth: 3,
			Layer:            mapdata.DefaultLayer,
		},
		Provinces: map[string]mapdata.Province{},
		Coasts:    map[string]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func withProvince(name string, x, y float64, terrain mapdata.Terrain, unit mapdata.UnitType) boardOption {
	return func(m *mapdata.Map) {
		m.Provinces[name] = mapdata.Province{Name: name, X: x, Y: y, Terrain: terrain, Unit: unit}
	}
}

// withArmy adds a land province holding an army.
func withArmy(name string, x, y float64) boardOption {
	return withProvince(name, x, y, mapdata.TerrainLand, mapdata.UnitArmy)
}

// withFleet adds a province of the given terrain holding a fleet.
func withFleet(name string, x, y float64, terrain mapdata.Terrain) boardOption {
	return withProvince(name, x, y, terrain, mapdata.UnitFleet)
}

// withLand adds an empty land province.
func withLand(name string, x, y float64) boardOption {
	return withProvince(name, x, y, mapdata.TerrainLand, mapdata.UnitNone)
}

// withSea adds an empty sea province.
func withSea(name string, x, y float64) boardOption {
	return withProvince(name, x, y, mapdata.TerrainSea, mapdata.UnitNone)
}

// withCoast adds a coast indicator belonging to parent.
func withCoast(name, parent string, x, y float64) boardOption {
	return func(m *mapdata.Map) {
		m.Provinces[name] = mapdata.Province{Name: name, X: x, Y: y, Terrain: mapdata.TerrainCoast}
		m.Coasts[name] = parent
	}
}

func withImmediate(names ...string) boardOption {
	return func(m *mapdata.Map) { m.Immediate = append(m.Immediate, names...) }
}

// memLayer is an in-memory Layer that remembers what is currently drawn.
type memLayer struct {
	next    ElementID
	live    map[ElementID]Primitive
	removed int
}

func newMemLayer() *memLayer {
	return &memLayer{live: map[ElementID]Primitive{}}
}

func (l *memLayer) Append(p Primitive) ElementID {
	l.next++
	l.live[l.next] = p
	return l.next
}

func (l *memLayer) Remove(id ElementID) {
	if _, ok := l.live[id]; ok {
		delete(l.live, id)
		l.removed++
	}
}

// newTestSession returns a session on a fresh memLayer with logs captured.
func newTestSession(t *testing.T, board *mapdata.Map) (*Session, *memLayer, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	layer := newMemLayer()
	s := NewSession(board, layer, WithLogger(log.New(&logs, "", 0)))
	return s, layer, &logs
}

func pt(x, y float64) mapdata.Point { return mapdata.Point{X: x, Y: y} }
