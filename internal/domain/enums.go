package domain

type TravelMode string

const (
	ModeFlight TravelMode = "flight"
	ModeTrain  TravelMode = "train"
	ModeBus    TravelMode = "bus"
	ModeCab    TravelMode = "cab"
)

// ValidTravelModes is the canonical set of accepted travel mode strings.
var ValidTravelModes = map[string]bool{
	"flight": true, "train": true, "bus": true, "cab": true,
}

// KnownThemes lists the themes the planner offers as preferences. Catalog
// entries may carry other themes; they simply never match a preference.
var KnownThemes = []string{"heritage", "nightlife", "adventure", "leisure", "family", "shopping"}

// SequenceStrategy selects how a day's picks are ordered before scheduling.
type SequenceStrategy string

const (
	SequenceIdentity  SequenceStrategy = "identity"
	SequenceProximity SequenceStrategy = "proximity"
)
