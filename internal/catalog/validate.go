package catalog

import (
	"fmt"
	"sort"
)

// MaxDurationMin is the longest visit a catalog entry may declare: one day.
const MaxDurationMin = 24 * 60

// Validate checks the catalog for errors before conversion.
// Returns a slice of all validation errors found, in city name order.
func Validate(f File) []error {
	var errs []error
	if len(f) == 0 {
		return []error{fmt.Errorf("catalog has no cities")}
	}

	for _, city := range sortedCityNames(f) {
		errs = append(errs, validateCity(city, f[city])...)
	}
	return errs
}

func validateCity(name string, c CityImport) []error {
	var errs []error
	if name == "" {
		errs = append(errs, fmt.Errorf("city name is required"))
	}
	if c.Center != nil {
		if len(c.Center) != 2 {
			errs = append(errs, fmt.Errorf("%s.center: expected [lat, lon], got %d values", name, len(c.Center)))
		} else {
			errs = append(errs, validateLatLon(name+".center", c.Center[0], c.Center[1])...)
		}
	}

	seen := make(map[string]bool, len(c.POI))
	for i, p := range c.POI {
		prefix := fmt.Sprintf("%s.poi[%d]", name, i)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if seen[p.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate %q", prefix, p.Name))
		}
		seen[p.Name] = true

		if p.Cost != nil && *p.Cost < 0 {
			errs = append(errs, fmt.Errorf("%s.cost: must be >= 0, got %v", prefix, *p.Cost))
		}
		if p.DurationMin != nil && (*p.DurationMin < 0 || *p.DurationMin > MaxDurationMin) {
			errs = append(errs, fmt.Errorf("%s.duration_min: must be between 0 and %d, got %d", prefix, MaxDurationMin, *p.DurationMin))
		}
		if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
			errs = append(errs, fmt.Errorf("%s.rating: must be between 0 and 5, got %v", prefix, *p.Rating))
		}
		if p.Reviews != nil && *p.Reviews < 0 {
			errs = append(errs, fmt.Errorf("%s.reviews: must be >= 0, got %d", prefix, *p.Reviews))
		}
		if (p.Lat == nil) != (p.Lon == nil) {
			errs = append(errs, fmt.Errorf("%s: lat and lon must be given together", prefix))
		} else if p.Lat != nil {
			errs = append(errs, validateLatLon(prefix, *p.Lat, *p.Lon)...)
		}
	}
	return errs
}

func validateLatLon(prefix string, lat, lon float64) []error {
	var errs []error
	if lat < -90 || lat > 90 {
		errs = append(errs, fmt.Errorf("%s: latitude %v out of range", prefix, lat))
	}
	if lon < -180 || lon > 180 {
		errs = append(errs, fmt.Errorf("%s: longitude %v out of range", prefix, lon))
	}
	return errs
}

func sortedCityNames(f File) []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
