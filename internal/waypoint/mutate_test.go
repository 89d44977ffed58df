package waypoint

import (
	"testing"

	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/models"
)

func makeList(n int) []models.Waypoint {
	wps := make([]models.Waypoint, 0, n)
	for i := 0; i < n; i++ {
		wps = append(wps, models.NewWaypoint(orb.Point{float64(i), 0}, 50, i, models.WaypointTypeWaypoint))
	}
	return Renumber(wps)
}

func assertContiguous(t *testing.T, wps []models.Waypoint) {
	t.Helper()
	seen := make(map[int]bool)
	for _, w := range wps {
		if w.Order < 0 || w.Order >= len(wps) {
			t.Fatalf("order %d out of range for %d waypoints", w.Order, len(wps))
		}
		if seen[w.Order] {
			t.Fatalf("duplicate order %d", w.Order)
		}
		seen[w.Order] = true
		if w.Label != models.WaypointLabel(w.Order) {
			t.Errorf("label %q does not match order %d", w.Label, w.Order)
		}
	}
}

func assertEndpointTypes(t *testing.T, wps []models.Waypoint) {
	t.Helper()
	if len(wps) == 0 {
		return
	}
	if wps[0].Type != models.WaypointTypeStart {
		t.Errorf("first waypoint type = %s, want start", wps[0].Type)
	}
	if len(wps) > 1 && wps[len(wps)-1].Type != models.WaypointTypeEnd {
		t.Errorf("last waypoint type = %s, want end", wps[len(wps)-1].Type)
	}
}

func TestRenumberSingleton(t *testing.T) {
	// A one-element list gets the start type; start wins over end.
	wps := Renumber([]models.Waypoint{
		models.NewWaypoint(orb.Point{1, 1}, 50, 7, models.WaypointTypeEnd),
	})
	if wps[0].Order != 0 || wps[0].Type != models.WaypointTypeStart {
		t.Fatalf("singleton = order %d type %s, want order 0 type start", wps[0].Order, wps[0].Type)
	}
	if wps[0].Label != "WP1" {
		t.Fatalf("singleton label = %q, want WP1", wps[0].Label)
	}
}

func TestRenumberKeepsGeneratorTypes(t *testing.T) {
	wps := makeList(4)
	wps[1].Type = models.WaypointTypeHover
	wps[2].Type = models.WaypointTypePhoto
	out := Renumber(wps)

	if out[1].Type != models.WaypointTypeHover || out[2].Type != models.WaypointTypePhoto {
		t.Errorf("interior generator/user types should survive renumbering, got %s/%s",
			out[1].Type, out[2].Type)
	}
	assertEndpointTypes(t, out)
}

func TestInsertMiddle(t *testing.T) {
	wps := makeList(3)
	out := Insert(wps, 0, orb.Point{10, 10}, 75)

	if len(out) != 4 {
		t.Fatalf("len = %d, want 4", len(out))
	}
	assertContiguous(t, out)
	assertEndpointTypes(t, out)

	inserted := out[1]
	if inserted.Longitude != 10 || inserted.Altitude != 75 {
		t.Errorf("inserted waypoint at wrong slot: %+v", inserted)
	}
	if inserted.Type != models.WaypointTypeWaypoint {
		t.Errorf("inserted type = %s, want waypoint", inserted.Type)
	}
}

func TestInsertAppend(t *testing.T) {
	wps := makeList(3)
	out := Insert(wps, 2, orb.Point{10, 10}, 75)

	assertContiguous(t, out)
	last := out[len(out)-1]
	if last.Longitude != 10 {
		t.Fatalf("append should land at the end, got %+v", last)
	}
	if last.Type != models.WaypointTypeEnd {
		t.Errorf("appended waypoint type = %s, want end", last.Type)
	}
	if out[2].Type != models.WaypointTypeWaypoint {
		t.Errorf("previous end should demote to waypoint, got %s", out[2].Type)
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	out := Insert(nil, -1, orb.Point{1, 2}, 30)
	if len(out) != 1 || out[0].Order != 0 {
		t.Fatalf("insert into empty list: %+v", out)
	}
	assertEndpointTypes(t, out)
}

func TestRemove(t *testing.T) {
	wps := makeList(3)
	out := Remove(wps, wps[0].ID)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	assertContiguous(t, out)
	assertEndpointTypes(t, out)
}

func TestRemoveLastRemaining(t *testing.T) {
	wps := makeList(1)
	out := Remove(wps, wps[0].ID)
	if len(out) != 0 {
		t.Fatalf("removing the only waypoint should yield an empty list, got %d", len(out))
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	wps := makeList(3)
	out := Remove(wps, "no-such-id")

	if len(out) != len(wps) {
		t.Fatalf("len changed on unknown-id removal")
	}
	for i := range wps {
		a, b := wps[i], out[i]
		if a.ID != b.ID || a.Order != b.Order || a.Label != b.Label || a.Type != b.Type ||
			a.Longitude != b.Longitude || a.Latitude != b.Latitude || a.Altitude != b.Altitude {
			t.Errorf("waypoint %d changed: %+v != %+v", i, b, a)
		}
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	wps := makeList(3)
	after := Insert(wps, 1, orb.Point{9, 9}, 50)

	var newID string
	for _, w := range after {
		if w.Order == 2 {
			newID = w.ID
		}
	}
	if newID == "" {
		t.Fatal("inserted waypoint not found at expected order")
	}

	back := Remove(after, newID)
	if len(back) != len(wps) {
		t.Fatalf("round trip changed length: %d != %d", len(back), len(wps))
	}
	for i := range wps {
		a, b := wps[i], back[i]
		if a.ID != b.ID || a.Order != b.Order || a.Label != b.Label || a.Type != b.Type ||
			a.Longitude != b.Longitude || a.Latitude != b.Latitude || a.Altitude != b.Altitude {
			t.Errorf("waypoint %d differs after round trip:\n  %+v\n  %+v", i, a, b)
		}
	}
}

func TestMove(t *testing.T) {
	wps := makeList(3)
	out := Move(wps, wps[1].ID, orb.Point{5, 6}, nil)

	if out[1].Longitude != 5 || out[1].Latitude != 6 {
		t.Fatalf("position not updated: %+v", out[1])
	}
	if out[1].Altitude != wps[1].Altitude {
		t.Errorf("altitude should be preserved when nil")
	}
	if out[1].Order != wps[1].Order || out[1].Type != wps[1].Type {
		t.Errorf("move must not touch order or type")
	}

	alt := 120.0
	out = Move(wps, wps[1].ID, orb.Point{5, 6}, &alt)
	if out[1].Altitude != 120 {
		t.Errorf("altitude not updated: %v", out[1].Altitude)
	}
}

func TestSetAltitude(t *testing.T) {
	wps := makeList(2)
	out := SetAltitude(wps, wps[0].ID, 99)
	if out[0].Altitude != 99 {
		t.Fatalf("altitude = %v, want 99", out[0].Altitude)
	}
	if out[0].Longitude != wps[0].Longitude || out[0].Type != wps[0].Type {
		t.Errorf("setAltitude must only touch altitude")
	}
}

func TestReorderSplice(t *testing.T) {
	wps := makeList(4)
	ids := []string{wps[0].ID, wps[1].ID, wps[2].ID, wps[3].ID}

	// Move the head to slot 2: expect 1,2,0,3 (splice, not swap).
	out := Reorder(wps, 0, 2)
	assertContiguous(t, out)
	assertEndpointTypes(t, out)

	want := []string{ids[1], ids[2], ids[0], ids[3]}
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("slot %d = %s, want %s", i, out[i].ID, id)
		}
	}
}

func TestReorderOutOfRange(t *testing.T) {
	wps := makeList(3)
	out := Reorder(wps, 10, 0)
	for i := range wps {
		if out[i].ID != wps[i].ID {
			t.Fatalf("out-of-range fromOrder must be a no-op")
		}
	}

	// toOrder clamps instead of dropping the element.
	out = Reorder(wps, 0, 99)
	assertContiguous(t, out)
	if out[len(out)-1].ID != wps[0].ID {
		t.Errorf("clamped reorder should land at the tail")
	}
}

func TestUpdateMeta(t *testing.T) {
	wps := makeList(3)
	speed := 12.5
	hover := 3.0
	photo := models.WaypointTypePhoto

	out := UpdateMeta(wps, wps[1].ID, &photo, &speed, &hover, []byte(`{"camera":"trigger"}`))
	if out[1].Type != models.WaypointTypePhoto {
		t.Errorf("type = %s, want photo", out[1].Type)
	}
	if out[1].Speed == nil || *out[1].Speed != 12.5 {
		t.Errorf("speed not applied")
	}
	if out[1].HoverTime == nil || *out[1].HoverTime != 3 {
		t.Errorf("hover time not applied")
	}
	if string(out[1].Actions) != `{"camera":"trigger"}` {
		t.Errorf("actions payload should pass through opaquely")
	}

	// Derived endpoint markers cannot be user-assigned.
	start := models.WaypointTypeStart
	out = UpdateMeta(wps, wps[1].ID, &start, nil, nil, nil)
	if out[1].Type == models.WaypointTypeStart {
		t.Errorf("start must remain a derived type")
	}
}

func TestMutationsDoNotAliasInput(t *testing.T) {
	wps := makeList(3)
	orig := wps[1].Altitude

	_ = SetAltitude(wps, wps[1].ID, 500)
	if wps[1].Altitude != orig {
		t.Fatal("input list mutated in place")
	}
}
