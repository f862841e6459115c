package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantLat  float64
		wantLng  float64
		wantOK   bool
	}{
		{
			name:     "Known city",
			location: "Pune",
			wantLat:  18.5204,
			wantLng:  73.8567,
			wantOK:   true,
		},
		{
			name:     "Case insensitive",
			location: "mumbai",
			wantLat:  19.076,
			wantLng:  72.8777,
			wantOK:   true,
		},
		{
			name:     "Surrounding whitespace",
			location: "  Delhi ",
			wantLat:  28.6139,
			wantLng:  77.209,
			wantOK:   true,
		},
		{
			name:     "Unknown city falls back to default",
			location: "Atlantis",
			wantLat:  19.076,
			wantLng:  72.8777,
			wantOK:   false,
		},
		{
			name:     "Empty name falls back to default",
			location: "",
			wantLat:  19.076,
			wantLng:  72.8777,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, ok := Resolve(tt.location)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantLat, coord.Lat, 0.0001)
			assert.InDelta(t, tt.wantLng, coord.Lng, 0.0001)
		})
	}
}

func TestCityIn(t *testing.T) {
	assert.Equal(t, "Pune", CityIn("theft reported near Pune outskirts"))
	assert.Equal(t, "Jaipur", CityIn("Delivery corridor: jaipur bypass"))
	assert.Equal(t, DefaultCity, CityIn("no city mentioned here"))
	assert.Equal(t, DefaultCity, CityIn(""))
}

func TestCities_StableOrder(t *testing.T) {
	first := Cities()
	second := Cities()
	assert.Equal(t, first, second)
	assert.Len(t, first, 10)
	assert.Contains(t, first, "Mumbai")
}
