package domain

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	// Lat is the latitude in degrees.
	Lat float64 `json:"lat"`
	// Lng is the longitude in degrees.
	Lng float64 `json:"lng"`
}

// Path is an ordered polyline a vehicle can follow. The shape is identical
// whether the points came from the live directions provider or were
// synthesized locally; Synthetic tells the consumer which one it got.
type Path struct {
	// Points is the ordered sequence of coordinates.
	Points []Coordinate `json:"points"`
	// Synthetic is true when the path was generated locally because the
	// directions provider was unavailable.
	Synthetic bool `json:"synthetic"`
	// Summary is a short human-readable description, e.g. "Mumbai to Pune".
	Summary string `json:"summary"`
}

// TextValue is a provider-style measurement with display text and raw value.
type TextValue struct {
	// Text is the display form, e.g. "150 km".
	Text string `json:"text"`
	// Value is the raw measurement (meters for distance, seconds for duration).
	Value int `json:"value"`
}

// Bounds is the bounding box of a route.
type Bounds struct {
	Northeast Coordinate `json:"northeast"`
	Southwest Coordinate `json:"southwest"`
}

// Step is a single instruction segment of a leg.
type Step struct {
	// Path is the polyline for this step.
	Path []Coordinate `json:"path"`
}

// Leg is a segment of a route between two waypoints.
type Leg struct {
	// Steps are the instruction segments of the leg.
	Steps []Step `json:"steps"`
	// Distance is the leg length.
	Distance TextValue `json:"distance"`
	// Duration is the expected travel time.
	Duration TextValue `json:"duration"`
	// StartLocation is the first coordinate of the leg.
	StartLocation Coordinate `json:"start_location"`
	// EndLocation is the last coordinate of the leg.
	EndLocation Coordinate `json:"end_location"`
}

// Polyline carries the provider's encoded overview polyline.
type Polyline struct {
	Points string `json:"points"`
}

// Route is a single drivable route in a directions response.
type Route struct {
	// Summary is a short label for the route.
	Summary string `json:"summary"`
	// Bounds is the route's bounding box.
	Bounds Bounds `json:"bounds"`
	// Legs are the route segments, one per waypoint pair.
	Legs []Leg `json:"legs"`
	// OverviewPolyline is the provider's encoded path.
	OverviewPolyline Polyline `json:"overview_polyline"`
	// Warnings holds provider advisories.
	Warnings []string `json:"warnings"`
	// WaypointOrder is the optimized waypoint visiting order.
	WaypointOrder []int `json:"waypoint_order"`
}

// DirectionsResponse mirrors the maps provider's directions payload so the
// dashboard can consume real and synthesized responses interchangeably.
type DirectionsResponse struct {
	// Status is the provider status, "OK" on success.
	Status string `json:"status"`
	// Routes holds the drivable routes, best first.
	Routes []Route `json:"routes"`
	// AvailableTravelModes lists the modes the provider can serve.
	AvailableTravelModes []string `json:"available_travel_modes,omitempty"`
}

// FlattenPath collects the step polylines of the first route into a single
// ordered coordinate sequence, dropping consecutive duplicates.
func (r *DirectionsResponse) FlattenPath() []Coordinate {
	if len(r.Routes) == 0 {
		return nil
	}
	var points []Coordinate
	for _, leg := range r.Routes[0].Legs {
		for _, step := range leg.Steps {
			for _, p := range step.Path {
				if len(points) > 0 && points[len(points)-1] == p {
					continue
				}
				points = append(points, p)
			}
		}
	}
	return points
}
