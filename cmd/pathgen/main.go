// pathgen generates a flight path from a GeoJSON boundary or centerline
// without running the server, for offline pre-flight visualization
// pipelines.
//
//	pathgen -in survey-area.geojson -pattern grid -spacing 100 -angle 0 > path.geojson
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"skysurvey/pathplanner/internal/models"
	"skysurvey/pathplanner/internal/pattern"
	"skysurvey/pathplanner/internal/services"
)

func main() {
	var (
		inPath      = flag.String("in", "", "input GeoJSON file (Polygon boundary or LineString centerline)")
		outPath     = flag.String("out", "", "output file (defaults to stdout)")
		patternName = flag.String("pattern", "grid", "pattern to generate: grid, corridor or perimeter")
		spacing     = flag.Float64("spacing", 30, "grid line spacing in meters")
		angle       = flag.Float64("angle", 0, "grid rotation in degrees")
		altitude    = flag.Float64("altitude", 50, "flight altitude AGL in meters")
		speed       = flag.Float64("speed", 8, "flight speed in m/s")
		width       = flag.Float64("width", 40, "corridor half-width in meters")
		wpSpacing   = flag.Float64("waypoint-spacing", 50, "corridor waypoint spacing in meters")
		inset       = flag.Float64("inset", 0, "perimeter inward offset in meters")
	)
	flag.Parse()

	if *inPath == "" {
		log.Fatal("missing -in: a GeoJSON input file is required")
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	ring, line, err := parseGeometry(raw)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}

	fp := models.NewFlightPath("pathgen")

	switch *patternName {
	case "grid":
		if ring == nil {
			log.Fatal("grid pattern needs a Polygon input")
		}
		gs := fp.GridSettings
		gs.Spacing, gs.Angle, gs.Altitude, gs.Speed = *spacing, *angle, *altitude, *speed
		wps, err := pattern.Grid(ring, gs)
		if err != nil {
			log.Fatalf("generate grid: %v", err)
		}
		fp.PatternType, fp.Waypoints, fp.GridSettings = models.PatternGrid, wps, gs

	case "corridor":
		if line == nil {
			log.Fatal("corridor pattern needs a LineString input")
		}
		cs := fp.CorridorSettings
		cs.Width, cs.Altitude, cs.WaypointSpacing, cs.Speed = *width, *altitude, *wpSpacing, *speed
		res, err := pattern.Corridor(line, cs)
		if err != nil {
			log.Fatalf("generate corridor: %v", err)
		}
		fp.PatternType, fp.Waypoints, fp.CorridorBuffer, fp.CorridorSettings = models.PatternCorridor, res.Waypoints, res.Buffer, cs

	case "perimeter":
		if ring == nil {
			log.Fatal("perimeter pattern needs a Polygon input")
		}
		wps, err := pattern.Perimeter(ring, *inset, *altitude)
		if err != nil {
			log.Fatalf("generate perimeter: %v", err)
		}
		fp.PatternType, fp.Waypoints = models.PatternPerimeter, wps

	default:
		log.Fatalf("unknown pattern %q", *patternName)
	}

	out, err := json.MarshalIndent(services.ExportFeatureCollection(fp), "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}

	if *outPath == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("wrote %d waypoints to %s", len(fp.Waypoints), *outPath)
}

// parseGeometry accepts a bare Geometry, a Feature or a FeatureCollection
// and extracts the first polygon ring or linestring it finds.
func parseGeometry(raw []byte) (orb.Ring, orb.LineString, error) {
	var geoms []orb.Geometry

	if fc, err := geojson.UnmarshalFeatureCollection(raw); err == nil {
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	} else if f, err := geojson.UnmarshalFeature(raw); err == nil {
		geoms = append(geoms, f.Geometry)
	} else if g, err := geojson.UnmarshalGeometry(raw); err == nil {
		geoms = append(geoms, g.Geometry())
	} else {
		return nil, nil, fmt.Errorf("input is not valid GeoJSON")
	}

	for _, g := range geoms {
		switch v := g.(type) {
		case orb.Polygon:
			if len(v) > 0 {
				return v[0], nil, nil
			}
		case orb.LineString:
			return nil, v, nil
		}
	}
	return nil, nil, fmt.Errorf("no Polygon or LineString geometry found")
}
