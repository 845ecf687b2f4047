package utils

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", -6.2, 106.8, -6.2, 106.8, 0, 0.001},
		// One degree of latitude is roughly 111.2 km anywhere on the globe.
		{"one degree latitude", 0, 0, 1, 0, 111195, 100},
		{"jakarta to bandung", -6.2088, 106.8456, -6.9175, 107.6191, 116000, 2000},
		{"across the equator", -0.5, 100, 0.5, 100, 111195, 100},
	}
	for _, c := range cases {
		got := HaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: HaversineDistance = %.1f, want %.1f ± %.1f", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	d1 := HaversineDistance(-6.2088, 106.8456, -6.9175, 107.6191)
	d2 := HaversineDistance(-6.9175, 107.6191, -6.2088, 106.8456)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestWithinRadius(t *testing.T) {
	centerLat, centerLon := -6.2088, 106.8456

	if !WithinRadius(centerLat, centerLon, centerLat, centerLon, 50) {
		t.Error("point at center should be within any positive radius")
	}

	// ~111 meters north of center.
	nearLat := centerLat + 0.001
	if !WithinRadius(nearLat, centerLon, centerLat, centerLon, 200) {
		t.Error("point 111m away should be within 200m radius")
	}
	if WithinRadius(nearLat, centerLon, centerLat, centerLon, 50) {
		t.Error("point 111m away should be outside 50m radius")
	}
}

func TestWithinRadiusNoFence(t *testing.T) {
	// Zero or negative radius means no geofence at all.
	if !WithinRadius(90, 0, -6.2088, 106.8456, 0) {
		t.Error("zero radius should match any point")
	}
	if !WithinRadius(90, 0, -6.2088, 106.8456, -1) {
		t.Error("negative radius should match any point")
	}
}
