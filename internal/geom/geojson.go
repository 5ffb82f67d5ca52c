package geom

import (
	"encoding/json"
	"errors"
)

// ParseBasemap reads a GeoJSON FeatureCollection (or single Feature) and
// keeps the Polygon/MultiPolygon geometries. Point and line features are
// ignored: the basemap only needs landmass outlines. Geometries with
// malformed coordinate arrays are skipped rather than failing the whole
// document.
func ParseBasemap(data []byte) (*Basemap, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	bm := &Basemap{}
	count := 0
	addPoly := func(s *Shape, poly [][][2]float64) {
		s.Polygons = append(s.Polygons, poly)
		for _, ring := range poly {
			for _, p := range ring {
				bm.BBox.extend(p, count == 0)
				count++
			}
		}
	}

	parsePoint := func(v any) (pt [2]float64, ok bool) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return [2]float64{}, false
		}
		lng, lok := a[0].(float64)
		lat, aok := a[1].(float64)
		if !lok || !aok {
			return [2]float64{}, false
		}
		return [2]float64{lng, lat}, true
	}
	parseRing := func(v any) (ring [][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				ring = append(ring, pt)
			}
		}
		return ring, len(ring) >= 3
	}
	parsePolygon := func(v any) (poly [][][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, r := range arr {
			if ring, ok := parseRing(r); ok {
				poly = append(poly, ring)
			}
		}
		return poly, len(poly) > 0
	}

	addFeature := func(fm map[string]any) {
		g, ok := fm["geometry"].(map[string]any)
		if !ok {
			return
		}
		name := ""
		if pm, ok := fm["properties"].(map[string]any); ok {
			name, _ = pm["name"].(string)
		}
		s := Shape{Name: name}
		gt, _ := g["type"].(string)
		switch gt {
		case "Polygon":
			if poly, ok := parsePolygon(g["coordinates"]); ok {
				addPoly(&s, poly)
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if poly, ok := parsePolygon(el); ok {
						addPoly(&s, poly)
					}
				}
			}
		}
		if len(s.Polygons) > 0 {
			bm.Shapes = append(bm.Shapes, s)
		}
	}

	switch t, _ := raw["type"].(string); t {
	case "Feature":
		addFeature(raw)
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					addFeature(fm)
				}
			}
		}
	default:
		return nil, errors.New("unsupported geojson type: " + t)
	}

	if len(bm.Shapes) == 0 {
		return nil, errors.New("no polygon geometries found")
	}
	return bm, nil
}
