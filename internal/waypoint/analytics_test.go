package waypoint

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/models"
)

func pathAlongEquator(n int, stepDeg float64) []models.Waypoint {
	wps := make([]models.Waypoint, 0, n)
	for i := 0; i < n; i++ {
		wps = append(wps, models.NewWaypoint(orb.Point{float64(i) * stepDeg, 0}, 50, i, models.WaypointTypeWaypoint))
	}
	return Renumber(wps)
}

func TestTotalDistance(t *testing.T) {
	if d := TotalDistance(nil); d != 0 {
		t.Fatalf("empty list distance = %v, want 0", d)
	}
	if d := TotalDistance(pathAlongEquator(1, 0.009)); d != 0 {
		t.Fatalf("singleton distance = %v, want 0", d)
	}

	// Two points 0.009 degrees apart at the equator: roughly 1 km.
	d := TotalDistance(pathAlongEquator(2, 0.009))
	if math.Abs(d-1000) > 10 {
		t.Fatalf("distance = %v, want ~1000m", d)
	}

	// Distance follows order, not slice position.
	wps := pathAlongEquator(3, 0.009)
	shuffled := []models.Waypoint{wps[2], wps[0], wps[1]}
	if ds := TotalDistance(shuffled); math.Abs(ds-d*2) > 20 {
		t.Fatalf("shuffled slice distance = %v, want ~%v", ds, d*2)
	}
}

func TestDuration(t *testing.T) {
	wps := pathAlongEquator(2, 0.009)
	d := TotalDistance(wps)

	if got := Duration(wps, 10); math.Abs(got-d/10) > 1e-9 {
		t.Fatalf("duration = %v, want %v", got, d/10)
	}
	if got := Duration(wps, 0); got != 0 {
		t.Fatalf("zero speed should yield 0, got %v", got)
	}
	if got := Duration(wps, -3); got != 0 {
		t.Fatalf("negative speed should yield 0, got %v", got)
	}
}

func TestAltitudes(t *testing.T) {
	r := Altitudes(nil)
	if r.Min != 0 || r.Max != 0 || r.Average != 0 {
		t.Fatalf("empty list range = %+v, want zeros", r)
	}

	wps := pathAlongEquator(3, 0.001)
	wps[0].Altitude = 30
	wps[1].Altitude = 60
	wps[2].Altitude = 90

	r = Altitudes(wps)
	if r.Min != 30 || r.Max != 90 || r.Average != 60 {
		t.Fatalf("range = %+v, want min 30 max 90 avg 60", r)
	}
}

func TestProfile(t *testing.T) {
	if p := Profile(nil); len(p) != 0 {
		t.Fatalf("empty profile should have no entries, got %d", len(p))
	}

	wps := pathAlongEquator(4, 0.009)
	p := Profile(wps)
	if len(p) != 4 {
		t.Fatalf("profile entries = %d, want 4", len(p))
	}

	if p[0].CumulativeDistance != 0 {
		t.Errorf("first entry cumulative distance = %v, want 0", p[0].CumulativeDistance)
	}
	for i := 1; i < len(p); i++ {
		if p[i].CumulativeDistance < p[i-1].CumulativeDistance {
			t.Errorf("cumulative distance decreased at entry %d", i)
		}
	}
	for i, e := range p {
		if e.Order != i {
			t.Errorf("entry %d has order %d", i, e.Order)
		}
		if e.WaypointID != wps[i].ID {
			t.Errorf("entry %d references wrong waypoint", i)
		}
		if e.Altitude != wps[i].Altitude {
			t.Errorf("entry %d altitude mismatch", i)
		}
	}
}

func TestOutsideBoundary(t *testing.T) {
	square := orb.Ring{{-0.001, -0.001}, {0.01, -0.001}, {0.01, 0.001}, {-0.001, 0.001}, {-0.001, -0.001}}

	wps := pathAlongEquator(3, 0.009) // lons 0, 0.009, 0.018; the last escapes
	ids := OutsideBoundary(wps, square)
	if len(ids) != 1 || ids[0] != wps[2].ID {
		t.Fatalf("outside = %v, want only the last waypoint", ids)
	}

	if ids := OutsideBoundary(nil, square); len(ids) != 0 {
		t.Fatalf("empty list should validate clean, got %v", ids)
	}
	if ids := OutsideBoundary(wps, orb.Ring{{0, 0}, {1, 1}}); ids != nil {
		t.Fatalf("degenerate boundary should yield nil, got %v", ids)
	}
}

func TestAboveAltitude(t *testing.T) {
	wps := pathAlongEquator(3, 0.001)
	wps[1].Altitude = 121

	ids := AboveAltitude(wps, 120)
	if len(ids) != 1 || ids[0] != wps[1].ID {
		t.Fatalf("above = %v, want only the second waypoint", ids)
	}
	if ids := AboveAltitude(wps, 500); len(ids) != 0 {
		t.Fatalf("no waypoint above 500, got %v", ids)
	}
}
