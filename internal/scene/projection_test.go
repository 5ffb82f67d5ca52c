package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estuatlas/internal/atlas"
)

func TestProjectionCenterLandsAtViewportCenter(t *testing.T) {
	p := NewProjection(650, 400)

	x, y := p.Project(atlas.Coordinates{Lat: 20, Lng: 0})
	assert.InDelta(t, 325.0, x, 0.001)
	assert.InDelta(t, 200.0, y, 0.001)
}

func TestProjectionScaleIsWidthDriven(t *testing.T) {
	p := NewProjection(650, 400)

	// 6.5 degrees of longitude at the equatorial scale is width/6.5 per
	// radian, so +90 lng lands at centerX + scale*pi/2
	x, _ := p.ProjectLngLat(90, 20)
	assert.InDelta(t, 325.0+100.0*1.5707963, x, 0.01)
}

func TestProjectionNorthIsUp(t *testing.T) {
	p := NewProjection(650, 400)

	_, yNorth := p.Project(atlas.Coordinates{Lat: 60, Lng: 0})
	_, ySouth := p.Project(atlas.Coordinates{Lat: -40, Lng: 0})
	assert.Less(t, yNorth, ySouth)
}

func TestProjectionClampsPolarLatitudes(t *testing.T) {
	p := NewProjection(650, 400)

	_, yPole := p.ProjectLngLat(0, 90)
	_, yClamp := p.ProjectLngLat(0, maxLat)
	assert.InDelta(t, yClamp, yPole, 0.001)

	_, ySouthPole := p.ProjectLngLat(0, -90)
	_, ySouthClamp := p.ProjectLngLat(0, -maxLat)
	assert.InDelta(t, ySouthClamp, ySouthPole, 0.001)
}
