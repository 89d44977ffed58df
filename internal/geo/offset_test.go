package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLine(t *testing.T) {
	center := orb.LineString{{0, 0}, {0.01, 0}}
	poly := BufferLine(center, 55.5)
	require.NotNil(t, poly)
	require.Len(t, poly, 1)

	ring := poly[0]
	assert.Equal(t, ring[0], ring[len(ring)-1], "buffer ring is closed")
	assert.Len(t, ring, 2*len(center)+1)

	// A centerline point sits inside the corridor; a point two widths off
	// to the side does not.
	assert.True(t, PointInPolygon(orb.Point{0.005, 0}, poly))
	off := MetersToDegrees(2 * 55.5)
	assert.False(t, PointInPolygon(orb.Point{0.005, off}, poly))

	// The half-width in degrees shows up as the ring's lateral extent.
	assert.InDelta(t, MetersToDegrees(55.5), ring[0][1], 1e-9)
}

func TestBufferLineDegenerate(t *testing.T) {
	assert.Nil(t, BufferLine(orb.LineString{{0, 0}}, 10))
	assert.Nil(t, BufferLine(orb.LineString{{0, 0}, {1, 1}}, 0))
	assert.Nil(t, BufferLine(orb.LineString{{0, 0}, {1, 1}}, -4))
}

func TestInsetRing(t *testing.T) {
	side := 0.009 // roughly 1 km
	square := orb.Ring{{0, 0}, {side, 0}, {side, side}, {0, side}, {0, 0}}

	in := InsetRing(square, 100)
	require.Len(t, in, len(square))
	assert.Equal(t, in[0], in[len(in)-1], "inset ring stays closed")

	// Every inset vertex moved 100 m toward the interior on both axes.
	off := MetersToDegrees(100)
	assert.InDelta(t, off, in[0][0], 1e-9)
	assert.InDelta(t, off, in[0][1], 1e-9)
	assert.InDelta(t, side-off, in[2][0], 1e-9)
	assert.InDelta(t, side-off, in[2][1], 1e-9)

	// All vertices remain inside the original polygon.
	orig := orb.Polygon{square}
	for _, v := range in {
		assert.True(t, PointInPolygon(v, orig))
	}
}

func TestInsetRingClockwise(t *testing.T) {
	// Winding direction must not flip the offset outward.
	side := 0.009
	square := orb.Ring{{0, 0}, {0, side}, {side, side}, {side, 0}, {0, 0}}

	in := InsetRing(square, 100)
	orig := orb.Polygon{square}
	for _, v := range in {
		assert.True(t, PointInPolygon(v, orig))
	}
}

func TestInsetRingPassthrough(t *testing.T) {
	square := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	assert.Equal(t, square, InsetRing(square, 0))
	assert.Equal(t, square, InsetRing(square, -5))

	open := orb.Ring{{0, 0}, {1, 0}, {1, 1}}
	assert.Equal(t, open, InsetRing(open, 10))
}
