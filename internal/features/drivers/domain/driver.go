package domain

import (
	geodomain "logisafe/internal/features/geo/domain"
)

// Availability is a driver's assignment status.
type Availability string

const (
	Available Availability = "Available"
	Busy      Availability = "Busy"
)

// Driver is a member of the static fleet roster.
type Driver struct {
	// ID is the fleet identifier, e.g. "D001".
	ID string `json:"id"`
	// Name is the driver's display name.
	Name string `json:"name"`
	// Vehicle is the assigned truck tag, e.g. "TRK-001".
	Vehicle string `json:"vehicle"`
	// CurrentLocation is the city the vehicle last reported from.
	CurrentLocation string `json:"currentLocation"`
	// Availability reports whether the driver can take a new assignment.
	Availability Availability `json:"availability"`
}

// DriverLocation is a map marker for a fleet vehicle.
type DriverLocation struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Vehicle     string               `json:"vehicle"`
	Coordinates geodomain.Coordinate `json:"coordinates"`
}

// Fleet returns the static driver roster.
// Drivers whose vehicles are en route are Busy; idle vehicles are Available.
func Fleet() []Driver {
	return []Driver{
		{ID: "D001", Name: "Rajesh Kumar", Vehicle: "TRK-001", CurrentLocation: "Mumbai", Availability: Busy},
		{ID: "D002", Name: "Amit Singh", Vehicle: "TRK-002", CurrentLocation: "Delhi", Availability: Available},
		{ID: "D003", Name: "Priya Sharma", Vehicle: "TRK-003", CurrentLocation: "Bangalore", Availability: Busy},
		{ID: "D004", Name: "Suresh Reddy", Vehicle: "TRK-004", CurrentLocation: "Hyderabad", Availability: Busy},
		{ID: "D005", Name: "Ananya Das", Vehicle: "TRK-005", CurrentLocation: "Kolkata", Availability: Available},
	}
}
