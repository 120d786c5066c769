// Package geo provides great-circle distance calculation for gate checks.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
// Kept local rather than using orb/geo's planar helpers so the constant
// matches the value persisted clients were calibrated against.
const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two points in kilometers.
// Points are orb.Points in lon/lat order. Both points must be known;
// resolving an absent location is the caller's concern.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := rad(a.Lat())
	lat2 := rad(b.Lat())
	dLat := lat2 - lat1
	dLon := rad(b.Lon()) - rad(a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
