package domain

import (
	"sort"
	"strings"
)

// DefaultCity is the coordinate fallback for unrecognized location names.
const DefaultCity = "Mumbai"

// cityCoordinates maps the known operating cities to their coordinates.
// Named locations outside this table resolve to DefaultCity.
var cityCoordinates = map[string]Coordinate{
	"Mumbai":    {Lat: 19.076, Lng: 72.8777},
	"Delhi":     {Lat: 28.6139, Lng: 77.209},
	"Bangalore": {Lat: 12.9716, Lng: 77.5946},
	"Hyderabad": {Lat: 17.385, Lng: 78.4867},
	"Chennai":   {Lat: 13.0827, Lng: 80.2707},
	"Kolkata":   {Lat: 22.5726, Lng: 88.3639},
	"Pune":      {Lat: 18.5204, Lng: 73.8567},
	"Jaipur":    {Lat: 26.9124, Lng: 75.7873},
	"Ahmedabad": {Lat: 23.0225, Lng: 72.5714},
	"Surat":     {Lat: 21.1702, Lng: 72.8311},
}

// Resolve maps a location name to coordinates. Unrecognized names resolve to
// DefaultCity; ok reports whether the name itself was known.
func Resolve(name string) (coord Coordinate, ok bool) {
	trimmed := strings.TrimSpace(name)
	for city, c := range cityCoordinates {
		if strings.EqualFold(city, trimmed) {
			return c, true
		}
	}
	return cityCoordinates[DefaultCity], false
}

// CityIn returns the first known city whose name appears in the query,
// scanning cities in stable alphabetical order. Falls back to DefaultCity.
func CityIn(query string) string {
	for _, city := range Cities() {
		if strings.Contains(strings.ToLower(query), strings.ToLower(city)) {
			return city
		}
	}
	return DefaultCity
}

// Cities returns the known city names in alphabetical order.
func Cities() []string {
	names := make([]string, 0, len(cityCoordinates))
	for city := range cityCoordinates {
		names = append(names, city)
	}
	sort.Strings(names)
	return names
}
