package mapdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleMap = `
render:
  unit_radius: 8
provinces:
  ber: {x: 410, y: 220, terrain: land, unit: a}
  nth: {x: 240, y: 180, terrain: sea}
  spa: {x: 100, y: 400}
  spa_nc: {x: 90, y: 380, terrain: coast, unit: f}
coasts:
  spa_nc: spa
immediate: [ber]
`

func TestParse_Tables(t *testing.T) {
	m, err := Parse([]byte(sampleMap))
	require.NoError(t, err)

	p, ok := m.Coordinate("ber")
	require.True(t, ok)
	require.Equal(t, Point{X: 410, Y: 220}, p)
	require.Equal(t, UnitArmy, m.UnitType("ber"))
	require.True(t, m.HasUnit("spa_nc"))
	require.False(t, m.HasUnit("nth"))
	require.False(t, m.HasUnit("nowhere"))
	require.Equal(t, TerrainSea, m.Terrain("nth"))
	require.Equal(t, TerrainLand, m.Terrain("spa"), "missing terrain defaults to land")

	parent, ok := m.Parent("spa_nc")
	require.True(t, ok)
	require.Equal(t, "spa", parent)
	_, ok = m.Parent("spa")
	require.False(t, ok)

	require.Equal(t, []string{"ber", "nth", "spa", "spa_nc"}, m.Names())
	require.Equal(t, "ber", m.Provinces["ber"].Name)
	require.Equal(t, []string{"ber"}, m.Immediate)
}

func TestParse_RenderDefaults(t *testing.T) {
	m, err := Parse([]byte(sampleMap))
	require.NoError(t, err)
	require.Equal(t, 8.0, m.Render.UnitRadius)
	require.Equal(t, DefaultOrderStrokeWidth, m.Render.OrderStrokeWidth)
	require.Equal(t, DefaultLayer, m.Render.Layer)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", `render: {unit_radius: 4}`, ErrNoProvinces},
		{"terrain", `provinces: {a: {x: 1, y: 1, terrain: swamp}}`, ErrUnknownTerrain},
		{"unit", `provinces: {a: {x: 1, y: 1, unit: z}}`, ErrUnknownUnit},
		{"coast not coast", "provinces: {a: {x: 1, y: 1}, b: {x: 2, y: 2}}\ncoasts: {a: b}", ErrBadCoast},
		{"coast parent", "provinces: {a_nc: {x: 1, y: 1, terrain: coast}}\ncoasts: {a_nc: a}", ErrBadCoast},
		{"immediate", "provinces: {a: {x: 1, y: 1}}\nimmediate: [b]", ErrUnknownProvince},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("provinces: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse map")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleMap), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Provinces, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemo(t *testing.T) {
	m := Demo()
	require.NotEmpty(t, m.Provinces)
	parent, ok := m.Parent("spa_nc")
	require.True(t, ok)
	require.Equal(t, "spa", parent)
	require.Equal(t, TerrainSea, m.Terrain("nth"))
}

func TestBounds(t *testing.T) {
	m, err := Parse([]byte(sampleMap))
	require.NoError(t, err)
	lo, hi := m.Bounds()
	require.Equal(t, Point{X: 90, Y: 180}, lo)
	require.Equal(t, Point{X: 410, Y: 400}, hi)
}
