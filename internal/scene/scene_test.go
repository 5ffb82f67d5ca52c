package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estuatlas/internal/atlas"
	"estuatlas/internal/geom"
)

func TestMarkerStyleSelectionBeatsHover(t *testing.T) {
	r, color, dimmed := MarkerStyle(atlas.ScaleLarge, true, true)
	assert.Equal(t, 12, r) // 9 base + 3 selected, hover bonus not stacked
	assert.Equal(t, ColorSelected, color)
	assert.False(t, dimmed)
}

func TestMarkerStyleHover(t *testing.T) {
	r, color, dimmed := MarkerStyle(atlas.ScaleSmall, false, true)
	assert.Equal(t, 6, r) // 4 base + 2 hovered
	assert.Equal(t, ColorHovered, color)
	assert.False(t, dimmed)
}

func TestMarkerStyleDefaultIsDimmed(t *testing.T) {
	r, color, dimmed := MarkerStyle(atlas.ScaleMassive, false, false)
	assert.Equal(t, 12, r)
	assert.Equal(t, ColorDefault, color)
	assert.True(t, dimmed)
}

func sceneFixture() []atlas.Estuary {
	return []atlas.Estuary{
		{ID: "a", Scale: atlas.ScaleSmall, Coordinates: atlas.Coordinates{Lat: 10, Lng: 10}},
		{ID: "b", Scale: atlas.ScaleLarge, Coordinates: atlas.Coordinates{Lat: 20, Lng: 20}},
		{ID: "c", Scale: atlas.ScaleMedium, Coordinates: atlas.Coordinates{Lat: 30, Lng: 30}},
	}
}

func TestBuildRaisesHoveredMarkerLast(t *testing.T) {
	p := NewProjection(650, 400)
	s := Build(p, nil, sceneFixture(), "", "b")

	require.Len(t, s.Markers, 3)
	assert.Equal(t, "b", s.Markers[2].ID)
	assert.True(t, s.Markers[2].Hovered)
	assert.Equal(t, "a", s.Markers[0].ID)
	assert.Equal(t, "c", s.Markers[1].ID)
}

func TestBuildWithoutBasemapStillProducesMarkers(t *testing.T) {
	p := NewProjection(650, 400)
	s := Build(p, nil, sceneFixture(), "a", "")

	assert.Empty(t, s.Shapes)
	require.Len(t, s.Markers, 3)
	assert.Equal(t, ColorSelected, s.Markers[0].Color)
}

func TestBuildProjectsBasemapRings(t *testing.T) {
	bm := &geom.Basemap{
		Shapes: []geom.Shape{
			{
				Name: "triangle",
				Polygons: [][][][2]float64{
					{{{0, 0}, {10, 0}, {10, 10}, {0, 0}}},
				},
			},
		},
	}
	p := NewProjection(650, 400)
	s := Build(p, bm, nil, "", "")

	require.Len(t, s.Shapes, 1)
	require.Len(t, s.Shapes[0].Rings, 1)
	assert.Len(t, s.Shapes[0].Rings[0], 4)

	// [lng 0, lat 0] sits at center X, below center Y (center lat is 20)
	v := s.Shapes[0].Rings[0][0]
	assert.InDelta(t, 325.0, v[0], 0.001)
	assert.Greater(t, v[1], 200.0)
}
