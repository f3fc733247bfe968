package domain

// City is a catalog destination with its points of interest.
type City struct {
	Name   string
	Center Coordinates
	POIs   []PointOfInterest
}
