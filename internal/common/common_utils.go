package common

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// ParseRing converts a wire-shape coordinate array into an orb ring.
func ParseRing(coords [][2]float64) orb.Ring {
	ring := make(orb.Ring, 0, len(coords))
	for _, c := range coords {
		ring = append(ring, orb.Point{c[0], c[1]})
	}
	return ring
}

// ParseLineString converts a wire-shape coordinate array into an orb
// linestring.
func ParseLineString(coords [][2]float64) orb.LineString {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, orb.Point{c[0], c[1]})
	}
	return ls
}
