package scene

import (
	"estuatlas/internal/atlas"
	"estuatlas/internal/geom"
)

// ColorClass picks the marker palette entry; the adapter decides the
// actual color values.
type ColorClass int

const (
	ColorDefault ColorClass = iota
	ColorHovered
	ColorSelected
)

// MarkerCmd draws one entity marker at a projected position. Markers
// appear in slice order; the hovered marker is always last so it is never
// occluded.
type MarkerCmd struct {
	ID      string
	X, Y    float64
	Radius  int
	Color   ColorClass
	Dimmed  bool
	Hovered bool
}

// ShapeCmd draws one filled landmass outline, rings already projected.
type ShapeCmd struct {
	Rings [][][2]float64
}

// Scene is the full ordered command list for one frame.
type Scene struct {
	Shapes  []ShapeCmd
	Markers []MarkerCmd
}

// MarkerStyle computes radius, color, and dimming for one marker from its
// scale tier and interaction state. Selection takes precedence over hover
// for both the size bonus and the color.
func MarkerStyle(scale atlas.ScaleTier, selected, hovered bool) (radius int, color ColorClass, dimmed bool) {
	radius = scale.MarkerRadius()
	switch {
	case selected:
		radius += 3
		color = ColorSelected
	case hovered:
		radius += 2
		color = ColorHovered
	default:
		color = ColorDefault
	}
	dimmed = !selected && !hovered
	return radius, color, dimmed
}

// Build projects the basemap and entities into draw commands. basemap may
// be nil (failed or pending load); markers are still produced. The result
// is a pure function of its inputs.
func Build(p Projection, basemap *geom.Basemap, entities []atlas.Estuary, selectedID, hoveredID string) Scene {
	var s Scene

	if basemap != nil {
		for _, shape := range basemap.Shapes {
			for _, poly := range shape.Polygons {
				cmd := ShapeCmd{Rings: make([][][2]float64, 0, len(poly))}
				for _, ring := range poly {
					pr := make([][2]float64, 0, len(ring))
					for _, pt := range ring {
						x, y := p.ProjectLngLat(pt[0], pt[1])
						pr = append(pr, [2]float64{x, y})
					}
					cmd.Rings = append(cmd.Rings, pr)
				}
				s.Shapes = append(s.Shapes, cmd)
			}
		}
	}

	var raised *MarkerCmd
	for _, e := range entities {
		selected := e.ID == selectedID
		hovered := e.ID == hoveredID
		r, color, dimmed := MarkerStyle(e.Scale, selected, hovered)
		x, y := p.Project(e.Coordinates)
		m := MarkerCmd{ID: e.ID, X: x, Y: y, Radius: r, Color: color, Dimmed: dimmed, Hovered: hovered}
		if hovered {
			raised = &m
			continue
		}
		s.Markers = append(s.Markers, m)
	}
	if raised != nil {
		s.Markers = append(s.Markers, *raised)
	}
	return s
}
