package domain

import (
	"math/rand"
	"strconv"
	"time"

	geodomain "logisafe/internal/features/geo/domain"
)

// RiskLevel classifies a zone's threat severity.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskLevels returns all levels in ascending severity order.
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh}
}

// RiskZone is a geographic area flagged for cargo security incidents.
type RiskZone struct {
	// ID uniquely identifies the zone.
	ID string `json:"id"`
	// Area is the human-readable area name, e.g. "NH48 Highway".
	Area string `json:"area"`
	// Location is the city or corridor the area belongs to.
	Location string `json:"location"`
	// RiskLevel is the severity classification.
	RiskLevel RiskLevel `json:"riskLevel"`
	// Coordinates is the zone's map position.
	Coordinates geodomain.Coordinate `json:"coordinates"`
	// Description summarizes the reported incidents.
	Description string `json:"description"`
	// LastUpdated is when the zone was created or last refreshed.
	LastUpdated time.Time `json:"lastUpdated"`
}

// SeededZones returns the static zones known at startup.
// The list is rebuilt on each call so callers may not mutate shared state.
func SeededZones(now time.Time) []RiskZone {
	return []RiskZone{
		{
			ID:          "1",
			Area:        "NH48 Highway",
			Location:    "Mumbai-Pune Expressway",
			RiskLevel:   RiskHigh,
			Coordinates: geodomain.Coordinate{Lat: 19.033, Lng: 73.0297},
			Description: "Multiple theft incidents reported between 2-5 PM. Cargo types: electronics, machinery.",
			LastUpdated: now,
		},
		{
			ID:          "2",
			Area:        "Outer Ring Road",
			Location:    "Bangalore",
			RiskLevel:   RiskMedium,
			Coordinates: geodomain.Coordinate{Lat: 13.0827, Lng: 77.5877},
			Description: "Incidents reported during night hours. Recommend avoiding after 10 PM.",
			LastUpdated: now,
		},
		{
			ID:          "3",
			Area:        "NH44 Junction",
			Location:    "Hyderabad-Vijayawada",
			RiskLevel:   RiskHigh,
			Coordinates: geodomain.Coordinate{Lat: 17.385, Lng: 78.4867},
			Description: "High-value cargo thefts reported. Police checkpoints recommended.",
			LastUpdated: now,
		},
		{
			ID:          "4",
			Area:        "Industrial Zone",
			Location:    "Delhi-NCR",
			RiskLevel:   RiskMedium,
			Coordinates: geodomain.Coordinate{Lat: 28.6139, Lng: 77.209},
			Description: "Incidents during early morning hours. Increased security recommended.",
			LastUpdated: now,
		},
		{
			ID:          "5",
			Area:        "Eastern Bypass",
			Location:    "Kolkata",
			RiskLevel:   RiskLow,
			Coordinates: geodomain.Coordinate{Lat: 22.5726, Lng: 88.3639},
			Description: "Minor incidents reported. General caution advised.",
			LastUpdated: now,
		},
	}
}

// generatedDescriptions is the pool of canned incident summaries for
// generated zones.
var generatedDescriptions = []string{
	"Recent cargo theft reported in this area. Exercise caution.",
	"Multiple incidents of vehicle hijacking in the past month.",
	"Suspicious activity reported by drivers. Avoid night travel.",
	"Police checkpoint recommended due to recent incidents.",
	"Low visibility area with history of theft attempts.",
}

// Generate builds a new zone for the first known city mentioned in the
// free-text query. Unknown queries fall back to the default city. The risk
// level and description are drawn from rng.
func Generate(query string, rng *rand.Rand, now time.Time) RiskZone {
	city := geodomain.CityIn(query)
	coords, _ := geodomain.Resolve(city)

	levels := RiskLevels()

	return RiskZone{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Area:        city + " Outskirts",
		Location:    city,
		RiskLevel:   levels[rng.Intn(len(levels))],
		Coordinates: coords,
		Description: generatedDescriptions[rng.Intn(len(generatedDescriptions))],
		LastUpdated: now,
	}
}
