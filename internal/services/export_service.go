package services

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"skysurvey/pathplanner/internal/models"
)

// ExportFeatureCollection renders a flight path as GeoJSON for pre-flight
// visualization tools: one Point feature per waypoint, one LineString for
// the flight line, and the corridor buffer polygon when present.
func ExportFeatureCollection(fp *models.FlightPath) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, 0, len(fp.Waypoints))
	for _, w := range fp.Waypoints {
		f := geojson.NewFeature(w.Point())
		f.Properties = geojson.Properties{
			"id":       w.ID,
			"order":    w.Order,
			"label":    w.Label,
			"type":     string(w.Type),
			"altitude": w.Altitude,
		}
		if w.Heading != nil {
			f.Properties["heading"] = *w.Heading
		}
		if w.Speed != nil {
			f.Properties["speed"] = *w.Speed
		}
		if w.HoverTime != nil {
			f.Properties["hover_time"] = *w.HoverTime
		}
		fc.Append(f)
		line = append(line, w.Point())
	}

	if len(line) >= 2 {
		f := geojson.NewFeature(line)
		f.Properties = geojson.Properties{"kind": "flight_line", "pattern": string(fp.PatternType)}
		fc.Append(f)
	}

	if fp.CorridorBuffer != nil {
		f := geojson.NewFeature(fp.CorridorBuffer)
		f.Properties = geojson.Properties{"kind": "corridor_buffer"}
		fc.Append(f)
	}

	return fc
}
