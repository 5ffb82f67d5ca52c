package tui

import (
	"math"
	"sort"

	"estuatlas/internal/atlas"
	"estuatlas/internal/scene"
)

// transform applies zoom around the viewport center plus the pan offset,
// in micro-pixel units.
func (m Model) transform(fx, fy float64, mw, mh int) (int, int) {
	cx, cy := float64(mw)/2, float64(mh)/2
	tx := int(math.Round((fx-cx)*m.zoom+cx)) + m.panX*2
	ty := int(math.Round((fy-cy)*m.zoom+cy)) + m.panY*4
	return tx, ty
}

// markerCellRect converts a marker's micro-pixel position and radius into
// a cell-grid center and half-extents (2 micro px per cell horizontally,
// 4 vertically).
func (m Model) markerCellRect(mk scene.MarkerCmd, mw, mh int) (cx, cy, rx, ry int) {
	sx, sy := m.transform(mk.X, mk.Y, mw, mh)
	cx, cy = sx/2, sy/4
	rx = mk.Radius / 2
	if rx < 1 {
		rx = 1
	}
	ry = mk.Radius / 4
	return cx, cy, rx, ry
}

// renderMap rasterizes the scene into a w x h cell frame. Shapes go onto
// the braille microgrid, markers and overlay text onto the cell grid.
func (m Model) renderMap(w, h int) string {
	mw, mh := w*2, h*4
	proj := scene.NewProjection(mw, mh)

	entities := m.derived()
	sc := scene.Build(proj, m.basemap, entities, m.selectedID, m.hoveredID)

	bb := newBrailleBuf(w, h)
	for _, sh := range sc.Shapes {
		m.rasterShape(bb, sh, mw, mh)
	}

	cb := newCellBuf(w, h)
	cb.compositeBraille(bb)

	for _, mk := range sc.Markers {
		m.rasterMarker(cb, mk, mw, mh)
	}

	if m.basemap == nil && m.basemapErr != nil {
		cb.writeText(2, 1, "map data unavailable", styleOverlayText)
	}
	if len(entities) == 0 {
		msg := "No estuaries match the current filter."
		if m.mode == atlas.ViewSaved {
			msg = "Nothing saved yet. Press f on an estuary to keep it here."
		}
		cb.writeText((w-len([]rune(msg)))/2, h/2, msg, styleOverlayText)
	}
	m.drawLegend(cb, w)

	return cb.render(markerPalette)
}

// rasterShape outlines and fills one landmass. All rings of the polygon
// contribute to an even-odd scanline fill so lakes stay empty.
func (m Model) rasterShape(bb *brailleBuf, sh scene.ShapeCmd, mw, mh int) {
	type pt struct{ x, y int }
	rings := make([][]pt, 0, len(sh.Rings))
	minY, maxY := mh, 0
	for _, ring := range sh.Rings {
		if len(ring) < 3 {
			continue
		}
		tp := make([]pt, len(ring))
		for i, v := range ring {
			x, y := m.transform(v[0], v[1], mw, mh)
			tp[i] = pt{x, y}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
		rings = append(rings, tp)
	}
	if len(rings) == 0 {
		return
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= mh {
		maxY = mh - 1
	}

	// even-odd scanline fill
	for y := minY; y <= maxY; y++ {
		var xs []int
		for _, tp := range rings {
			n := len(tp)
			for i := 0; i < n; i++ {
				a, b := tp[i], tp[(i+1)%n]
				if (a.y <= y && b.y > y) || (b.y <= y && a.y > y) {
					x := a.x + (y-a.y)*(b.x-a.x)/(b.y-a.y)
					xs = append(xs, x)
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := xs[i]; x <= xs[i+1]; x++ {
				bb.setPixel(x, y)
			}
		}
	}

	// outline on top keeps thin islands visible at low zoom
	for _, tp := range rings {
		n := len(tp)
		for i := 0; i < n; i++ {
			a, b := tp[i], tp[(i+1)%n]
			bb.drawLineMicro(a.x, a.y, b.x, b.y)
		}
	}
}

// rasterMarker draws one marker as a filled ellipse of cells.
func (m Model) rasterMarker(cb *cellBuf, mk scene.MarkerCmd, mw, mh int) {
	cx, cy, rx, ry := m.markerCellRect(mk, mw, mh)

	style := styleMarkerDefault
	switch mk.Color {
	case scene.ColorSelected:
		style = styleMarkerSelected
	case scene.ColorHovered:
		style = styleMarkerHovered
	default:
		if mk.Dimmed {
			style = styleMarkerDefaultDim
		}
	}

	r := float64(mk.Radius)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			fx, fy := float64(dx*2), float64(dy*4)
			if fx*fx+fy*fy <= r*r {
				cb.set(cx+dx, cy+dy, '●', style)
			}
		}
	}
	// a radius under one cell row still gets its center cell
	cb.set(cx, cy, '●', style)
}

// hitTest resolves a cell position inside the map area to a marker ID. It
// rebuilds the marker layout from current state rather than caching the
// last frame, so it stays correct however Update and View interleave.
// When markers overlap the one drawn last wins, matching what the eye sees.
func (m Model) hitTest(x, y int) string {
	if m.mapW <= 0 || m.mapH <= 0 {
		return ""
	}
	mw, mh := m.mapW*2, m.mapH*4
	proj := scene.NewProjection(mw, mh)
	sc := scene.Build(proj, nil, m.derived(), m.selectedID, m.hoveredID)

	hit := ""
	for _, mk := range sc.Markers {
		cx, cy, rx, ry := m.markerCellRect(mk, mw, mh)
		if abs(x-cx) <= rx && abs(y-cy) <= ry {
			hit = mk.ID
		}
	}
	return hit
}

// drawLegend maps the marker glyph sizes to scale tiers in the top-right
// corner. Glyphs shrink with the tier, mirroring the marker radii.
func (m Model) drawLegend(cb *cellBuf, w int) {
	entries := []struct {
		glyph rune
		label string
	}{
		{'⬤', "Massive"},
		{'●', "Large"},
		{'•', "Medium"},
		{'·', "Small"},
	}
	x := w - 12
	for i, e := range entries {
		cb.set(x, 1+i, e.glyph, styleMarkerDefault)
		cb.writeText(x+2, 1+i, e.label, styleOverlayText)
	}
}
