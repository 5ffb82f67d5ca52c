// Package scene turns geographic state into ordered draw commands. It knows
// nothing about the terminal: the tui package rasterizes its output onto
// whatever surface it has. Keeping this split makes the projection math and
// the styling rules testable without a rendering backend.
package scene

import (
	"math"

	"estuatlas/internal/atlas"
)

// Projection constants: a cylindrical Mercator centered on (lng 0, lat 20),
// scaled so the world spans the viewport width, translated to the viewport
// center.
const (
	scaleDivisor = 6.5
	centerLng    = 0.0
	centerLat    = 20.0

	// Latitudes are clamped to the usual web-Mercator limit so polar
	// geometry (Antarctica) cannot project to infinity.
	maxLat = 85.05113
)

// Projection maps lat/lng to viewport coordinates. The unit is whatever the
// caller passed as viewport size; the tui uses the braille microgrid.
type Projection struct {
	scale float64
	tx    float64
	ty    float64
	refX  float64
	refY  float64
}

// NewProjection configures a projection for the given viewport size. It is
// rebuilt whenever the viewport changes; rebuilding discards any zoom/pan
// transform layered on top.
func NewProjection(width, height int) Projection {
	p := Projection{
		scale: float64(width) / scaleDivisor,
		tx:    float64(width) / 2,
		ty:    float64(height) / 2,
	}
	p.refX = radians(centerLng)
	p.refY = mercY(radians(centerLat))
	return p
}

// Project maps a geographic coordinate to viewport space.
func (p Projection) Project(c atlas.Coordinates) (x, y float64) {
	return p.project(c.Lng, c.Lat)
}

// ProjectLngLat is Project for raw [lng, lat] pairs, the order GeoJSON
// rings use.
func (p Projection) ProjectLngLat(lng, lat float64) (x, y float64) {
	return p.project(lng, lat)
}

func (p Projection) project(lng, lat float64) (x, y float64) {
	if lat > maxLat {
		lat = maxLat
	} else if lat < -maxLat {
		lat = -maxLat
	}
	x = p.tx + p.scale*(radians(lng)-p.refX)
	y = p.ty - p.scale*(mercY(radians(lat))-p.refY)
	return x, y
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func mercY(latRad float64) float64 {
	return math.Log(math.Tan(math.Pi/4 + latRad/2))
}
