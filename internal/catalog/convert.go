package catalog

import (
	"github.com/alexanderramin/itinera/internal/domain"
)

// Convert transforms a validated File into domain cities, sorted by name.
// Call Validate first; Convert assumes the file is valid.
//
// A city without a center uses domain.DefaultCityCenter. A POI without
// coordinates is placed at its city's center.
func Convert(f File) []domain.City {
	cities := make([]domain.City, 0, len(f))
	for _, name := range sortedCityNames(f) {
		c := f[name]
		center := domain.DefaultCityCenter
		if len(c.Center) == 2 {
			center = domain.Coordinates{Lat: c.Center[0], Lon: c.Center[1]}
		}

		pois := make([]domain.PointOfInterest, 0, len(c.POI))
		for _, p := range c.POI {
			loc := center
			if p.Lat != nil && p.Lon != nil {
				loc = domain.Coordinates{Lat: *p.Lat, Lon: *p.Lon}
			}
			pois = append(pois, domain.PointOfInterest{
				Name:        p.Name,
				Theme:       p.Theme,
				Cost:        p.Cost,
				DurationMin: p.DurationMin,
				Rating:      p.Rating,
				Reviews:     p.Reviews,
				Location:    loc,
			})
		}
		cities = append(cities, domain.City{Name: name, Center: center, POIs: pois})
	}
	return cities
}
