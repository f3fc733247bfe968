package domain

import "math"

const earthRadiusKm = 6371.0

// DefaultCityCenter is used when a catalog city has no center of its own.
var DefaultCityCenter = Coordinates{Lat: 17.3850, Lon: 78.4867}

// Coordinates is an immutable WGS84 position.
type Coordinates struct {
	Lat float64
	Lon float64
}

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
