// Package mapdata holds the static lookup tables produced by the map compiler:
// province coordinates, terrain, resident units, the coast table and the
// rendering configuration. Tables are read once and never mutated.
package mapdata

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// Point is a 2D map coordinate in canvas units.
type Point struct {
	X float64
	Y float64
}

// Terrain classifies a province.
type Terrain string

const (
	TerrainLand  Terrain = "land"
	TerrainSea   Terrain = "sea"
	TerrainCoast Terrain = "coast" // coast indicator, sub-location of a parent province
)

// UnitType is the resident unit of a province. The zero value means no unit.
type UnitType string

const (
	UnitNone  UnitType = ""
	UnitArmy  UnitType = "a"
	UnitFleet UnitType = "f"
)

// Province is one named location on the map.
type Province struct {
	Name    string   `yaml:"-"`
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	Terrain Terrain  `yaml:"terrain"`
	Unit    UnitType `yaml:"unit"`
}

// Point returns the province centre.
func (p Province) Point() Point { return Point{X: p.X, Y: p.Y} }

// RenderConfig carries the canvas parameters the order glyphs are drawn with.
type RenderConfig struct {
	UnitRadius       float64 `yaml:"unit_radius"`
	OrderStrokeWidth float64 `yaml:"order_stroke_width"`
	Layer            string  `yaml:"layer"` // id of the canvas layer that receives order glyphs
}

// Defaults used when a map file leaves the render block empty.
const (
	DefaultUnitRadius       = 10.0
	DefaultOrderStrokeWidth = 3.0
	DefaultLayer            = "arrows"
)

// Map is the full set of tables for one board.
type Map struct {
	Render    RenderConfig        `yaml:"render"`
	Provinces map[string]Province `yaml:"provinces"`
	// Coasts maps a coast indicator to its parent province.
	Coasts map[string]string `yaml:"coasts"`
	// Immediate lists provinces that get a Hold glyph at startup.
	Immediate []string `yaml:"immediate"`
}

// Load reads and parses a map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Demo returns the embedded demo board.
func Demo() *Map {
	m, err := Parse(demoYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded demo map: %v", err))
	}
	return m
}

// Parse decodes a YAML map document and checks its structure.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	m.applyDefaults()
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Map) applyDefaults() {
	if m.Render.UnitRadius <= 0 {
		m.Render.UnitRadius = DefaultUnitRadius
	}
	if m.Render.OrderStrokeWidth <= 0 {
		m.Render.OrderStrokeWidth = DefaultOrderStrokeWidth
	}
	if m.Render.Layer == "" {
		m.Render.Layer = DefaultLayer
	}
	if m.Coasts == nil {
		m.Coasts = map[string]string{}
	}
	for name, p := range m.Provinces {
		p.Name = name
		if p.Terrain == "" {
			p.Terrain = TerrainLand
		}
		m.Provinces[name] = p
	}
}

func (m *Map) validate() error {
	if len(m.Provinces) == 0 {
		return ErrNoProvinces
	}
	for name, p := range m.Provinces {
		switch p.Terrain {
		case TerrainLand, TerrainSea, TerrainCoast:
		default:
			return fmt.Errorf("province %q: %w %q", name, ErrUnknownTerrain, p.Terrain)
		}
		switch p.Unit {
		case UnitNone, UnitArmy, UnitFleet:
		default:
			return fmt.Errorf("province %q: %w %q", name, ErrUnknownUnit, p.Unit)
		}
	}
	for coast, parent := range m.Coasts {
		c, ok := m.Provinces[coast]
		if !ok || c.Terrain != TerrainCoast {
			return fmt.Errorf("coast %q: %w: not a coast province", coast, ErrBadCoast)
		}
		if _, ok := m.Provinces[parent]; !ok {
			return fmt.Errorf("coast %q: %w: unknown parent %q", coast, ErrBadCoast, parent)
		}
	}
	for _, name := range m.Immediate {
		if _, ok := m.Provinces[name]; !ok {
			return fmt.Errorf("immediate hold %q: %w", name, ErrUnknownProvince)
		}
	}
	return nil
}

// Coordinate returns the centre of a province.
func (m *Map) Coordinate(name string) (Point, bool) {
	p, ok := m.Provinces[name]
	if !ok {
		return Point{}, false
	}
	return p.Point(), true
}

// UnitType returns the resident unit, UnitNone when the province is empty or unknown.
func (m *Map) UnitType(name string) UnitType {
	return m.Provinces[name].Unit
}

// HasUnit reports whether a unit sits on the province.
func (m *Map) HasUnit(name string) bool {
	return m.UnitType(name) != UnitNone
}

// Terrain returns the terrain of a province. Unknown names classify as land.
func (m *Map) Terrain(name string) Terrain {
	p, ok := m.Provinces[name]
	if !ok {
		return TerrainLand
	}
	return p.Terrain
}

// Parent returns the parent province of a coast indicator.
func (m *Map) Parent(coast string) (string, bool) {
	parent, ok := m.Coasts[coast]
	return parent, ok
}

// Names returns every province name in ascending order.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.Provinces))
	for name := range m.Provinces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the bounding box of all province centres.
func (m *Map) Bounds() (lo, hi Point) {
	lo = Point{X: math.MaxFloat64, Y: math.MaxFloat64}
	hi = Point{X: -math.MaxFloat64, Y: -math.MaxFloat64}
	for _, p := range m.Provinces {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
