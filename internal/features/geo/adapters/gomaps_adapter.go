package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logisafe/internal/core/config"
	"logisafe/internal/core/httpclient"
	"logisafe/internal/features/geo/domain"
)

// GoMapsAdapter implements the DirectionsProvider interface against a
// GoMaps-compatible (Google-shaped) directions API.
type GoMapsAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the maps provider connection details.
	config config.MapsConfig
}

// NewGoMapsAdapter creates a new instance of GoMapsAdapter.
func NewGoMapsAdapter(cfg config.MapsConfig) *GoMapsAdapter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoMapsAdapter{
		client: httpclient.NewClient(timeout),
		config: cfg,
	}
}

// GetDirections calls the directions endpoint and maps the payload into the
// domain response. Non-OK HTTP status, a provider status other than "OK" and
// undecodable bodies are all reported as errors so the caller can fall back.
func (a *GoMapsAdapter) GetDirections(ctx context.Context, origin, destination string, waypoints []string, travelMode string) (*domain.DirectionsResponse, error) {
	if a.config.APIKey == "" {
		return nil, fmt.Errorf("maps provider not configured: missing API key")
	}

	endpoint := fmt.Sprintf("%s/directions/json", a.config.BaseURL)

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", travelMode)
	params.Set("key", a.config.APIKey)
	if len(waypoints) > 0 {
		params.Set("waypoints", strings.Join(waypoints, "|"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create directions request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("maps API returned status: %d", resp.StatusCode)
	}

	var directions rawDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if directions.Status != "OK" {
		return nil, fmt.Errorf("maps API returned status %q", directions.Status)
	}

	return mapToDomain(directions), nil
}

// mapToDomain converts the raw provider payload into the domain response.
// Each step contributes its start and end location to the step path, which is
// enough resolution for polyline rendering and zone matching.
func mapToDomain(raw rawDirectionsResponse) *domain.DirectionsResponse {
	out := &domain.DirectionsResponse{
		Status:               raw.Status,
		AvailableTravelModes: raw.AvailableTravelModes,
	}

	for _, r := range raw.Routes {
		route := domain.Route{
			Summary: r.Summary,
			Bounds: domain.Bounds{
				Northeast: domain.Coordinate(r.Bounds.Northeast),
				Southwest: domain.Coordinate(r.Bounds.Southwest),
			},
			OverviewPolyline: domain.Polyline{Points: r.OverviewPolyline.Points},
			Warnings:         r.Warnings,
			WaypointOrder:    r.WaypointOrder,
		}

		for _, l := range r.Legs {
			leg := domain.Leg{
				Distance:      domain.TextValue(l.Distance),
				Duration:      domain.TextValue(l.Duration),
				StartLocation: domain.Coordinate(l.StartLocation),
				EndLocation:   domain.Coordinate(l.EndLocation),
			}
			for _, s := range l.Steps {
				leg.Steps = append(leg.Steps, domain.Step{
					Path: []domain.Coordinate{
						domain.Coordinate(s.StartLocation),
						domain.Coordinate(s.EndLocation),
					},
				})
			}
			route.Legs = append(route.Legs, leg)
		}

		out.Routes = append(out.Routes, route)
	}

	return out
}

// internal structs for mapping

// rawDirectionsResponse is the JSON structure of the provider's payload.
type rawDirectionsResponse struct {
	Status               string     `json:"status"`
	Routes               []rawRoute `json:"routes"`
	AvailableTravelModes []string   `json:"available_travel_modes"`
}

type rawRoute struct {
	Summary          string      `json:"summary"`
	Bounds           rawBounds   `json:"bounds"`
	Legs             []rawLeg    `json:"legs"`
	OverviewPolyline rawPolyline `json:"overview_polyline"`
	Warnings         []string    `json:"warnings"`
	WaypointOrder    []int       `json:"waypoint_order"`
}

type rawBounds struct {
	Northeast rawLatLng `json:"northeast"`
	Southwest rawLatLng `json:"southwest"`
}

type rawLeg struct {
	Steps         []rawStep    `json:"steps"`
	Distance      rawTextValue `json:"distance"`
	Duration      rawTextValue `json:"duration"`
	StartLocation rawLatLng    `json:"start_location"`
	EndLocation   rawLatLng    `json:"end_location"`
}

type rawStep struct {
	StartLocation rawLatLng `json:"start_location"`
	EndLocation   rawLatLng `json:"end_location"`
}

type rawPolyline struct {
	Points string `json:"points"`
}

type rawTextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type rawLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
