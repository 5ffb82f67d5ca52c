package geom

import "encoding/json"

// PointFeature is one point record for GeoJSON export.
type PointFeature struct {
	Lng        float64
	Lat        float64
	Properties map[string]any
}

type featureJSON struct {
	Type       string         `json:"type"`
	Geometry   geometryJSON   `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geometryJSON struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type collectionJSON struct {
	Type     string        `json:"type"`
	Features []featureJSON `json:"features"`
}

// EncodePoints renders the features as a GeoJSON FeatureCollection of
// Point geometries, coordinates in [lng, lat] order.
func EncodePoints(feats []PointFeature) ([]byte, error) {
	fc := collectionJSON{Type: "FeatureCollection", Features: make([]featureJSON, 0, len(feats))}
	for _, f := range feats {
		props := f.Properties
		if props == nil {
			props = map[string]any{}
		}
		fc.Features = append(fc.Features, featureJSON{
			Type:       "Feature",
			Geometry:   geometryJSON{Type: "Point", Coordinates: [2]float64{f.Lng, f.Lat}},
			Properties: props,
		})
	}
	return json.MarshalIndent(fc, "", "  ")
}
