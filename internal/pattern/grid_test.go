package pattern

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skysurvey/pathplanner/internal/models"
)

// kmSquare is roughly 1 km x 1 km at the equator.
func kmSquare() orb.Ring {
	const side = 0.009
	return orb.Ring{{0, 0}, {side, 0}, {side, side}, {0, side}, {0, 0}}
}

func gridSettings(spacing, angle float64) models.GridSettings {
	s := models.DefaultGridSettings()
	s.Spacing = spacing
	s.Angle = angle
	return s
}

func TestGridSquareCoverage(t *testing.T) {
	wps, err := Grid(kmSquare(), gridSettings(100, 0))
	require.NoError(t, err)

	// ~10 lines at 100 m spacing over a 1 km square, two waypoints each.
	require.NotEmpty(t, wps)
	assert.Equal(t, 0, len(wps)%2, "two waypoints per line")
	lines := len(wps) / 2
	assert.GreaterOrEqual(t, lines, 9)
	assert.LessOrEqual(t, lines, 11)

	for i, w := range wps {
		assert.Equal(t, i, w.Order)
		assert.Equal(t, models.WaypointLabel(i), w.Label)
		assert.Equal(t, 50.0, w.Altitude)
	}

	assert.Equal(t, models.WaypointTypeStart, wps[0].Type)
	assert.Equal(t, models.WaypointTypeTurn, wps[1].Type)
	assert.Equal(t, models.WaypointTypeTurn, wps[len(wps)-2].Type)
	assert.Equal(t, models.WaypointTypeEnd, wps[len(wps)-1].Type)
	for _, w := range wps[2 : len(wps)-2] {
		assert.Equal(t, models.WaypointTypeWaypoint, w.Type)
	}
}

func TestGridSerpentineAlternation(t *testing.T) {
	wps, err := Grid(kmSquare(), gridSettings(100, 0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(wps), 8)

	// Consecutive lines swap their relative longitude ordering: west-east,
	// then east-west, and so on.
	for i := 0; i+3 < len(wps); i += 2 {
		thisWestward := wps[i].Longitude < wps[i+1].Longitude
		nextWestward := wps[i+2].Longitude < wps[i+3].Longitude
		assert.NotEqual(t, thisWestward, nextWestward,
			"lines %d and %d should traverse in opposite directions", i/2, i/2+1)
	}
}

func TestGridRotated(t *testing.T) {
	wps, err := Grid(kmSquare(), gridSettings(100, 45))
	require.NoError(t, err)
	assert.NotEmpty(t, wps, "rotated sweep still crosses the polygon")
	assert.Equal(t, 0, len(wps)%2)

	// Any real angle normalizes; 360+45 behaves like 45.
	wps2, err := Grid(kmSquare(), gridSettings(100, 405))
	require.NoError(t, err)
	assert.Equal(t, len(wps), len(wps2))
}

func TestGridDegenerateBoundary(t *testing.T) {
	wps, err := Grid(orb.Ring{{0, 0}, {1, 1}, {0, 0}}, gridSettings(100, 0))
	require.NoError(t, err)
	assert.Empty(t, wps)

	wps, err = Grid(nil, gridSettings(100, 0))
	require.NoError(t, err)
	assert.Empty(t, wps)
}

func TestGridInvalidSettings(t *testing.T) {
	_, err := Grid(kmSquare(), gridSettings(0, 0))
	require.ErrorIs(t, err, models.ErrInvalidSettings)

	_, err = Grid(kmSquare(), gridSettings(-10, 0))
	require.ErrorIs(t, err, models.ErrInvalidSettings)
}
