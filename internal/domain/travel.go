package domain

// TravelOffer is a priced option from a travel supplier. Depart and Arrive are
// "HH:MM" clock times.
type TravelOffer struct {
	Mode        TravelMode
	Provider    string
	Price       float64
	Currency    string
	Depart      string
	Arrive      string
	DurationMin int
	Rating      float64
	Reviews     int
}
