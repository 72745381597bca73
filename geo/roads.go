package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// RoadSegment is one polyline of the road network in projected planar meters,
// tagged with its surface type.
type RoadSegment struct {
	Points  []Point
	Surface string
}

var errNoFeatures = errors.New("road file contains no line features")

type geoJSONFile struct {
	Type     string `json:"type"`
	Features []struct {
		Properties map[string]any `json:"properties"`
		Geometry   struct {
			Type        string          `json:"type"`
			Coordinates json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// LoadRoadSegments reads a GeoJSON FeatureCollection of LineString and
// MultiLineString features with geodetic [lng, lat] coordinates, projects
// them to planar meters, and returns one segment per line. The surface type
// is taken from the "road_type" property; features without one are treated
// as paved, matching the source dataset.
func LoadRoadSegments(path string) ([]RoadSegment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read road file: %w", err)
	}
	var file geoJSONFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse road file: %w", err)
	}

	var segments []RoadSegment
	for _, f := range file.Features {
		surface := "paved"
		if v, ok := f.Properties["road_type"].(string); ok && v != "" {
			surface = v
		}
		switch f.Geometry.Type {
		case "LineString":
			var coords [][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &coords); err != nil {
				return nil, fmt.Errorf("parse LineString coordinates: %w", err)
			}
			if seg := projectLine(coords, surface); seg != nil {
				segments = append(segments, *seg)
			}
		case "MultiLineString":
			var lines [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &lines); err != nil {
				return nil, fmt.Errorf("parse MultiLineString coordinates: %w", err)
			}
			for _, coords := range lines {
				if seg := projectLine(coords, surface); seg != nil {
					segments = append(segments, *seg)
				}
			}
		default:
			// Point features and other geometry types carry no road geometry.
			continue
		}
	}
	if len(segments) == 0 {
		return nil, errNoFeatures
	}
	return segments, nil
}

func projectLine(coords [][]float64, surface string) *RoadSegment {
	if len(coords) < 2 {
		return nil
	}
	pts := make([]Point, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			return nil
		}
		pts = append(pts, Project(LatLng{Lat: c[1], Lng: c[0]}))
	}
	return &RoadSegment{Points: pts, Surface: surface}
}
