package domain

import (
	"time"

	routedomain "logisafe/internal/features/routes/domain"
)

// Order is a delivery order moving cargo between two cities.
type Order struct {
	// ID is the order identifier, e.g. "ORD-3F2A8C1D".
	ID string `json:"id"`
	// Customer is the ordering party's display name.
	Customer string `json:"customer"`
	// PickupLocation is the origin city.
	PickupLocation string `json:"pickupLocation"`
	// DeliveryLocation is the destination city.
	DeliveryLocation string `json:"deliveryLocation"`
	// CargoType drives risk scoring during route optimization.
	CargoType routedomain.CargoType `json:"cargoType"`
	// WeightKG is the cargo weight in kilograms.
	WeightKG float64 `json:"weightKg"`
	// SpecialInstructions carries free-text handling notes.
	SpecialInstructions string `json:"specialInstructions,omitempty"`
	// Status is the delivery status.
	Status Status `json:"status"`
	// Driver is the assigned driver's ID, empty until assignment.
	Driver string `json:"driver,omitempty"`
	// Route is the chosen route variant key, empty until assignment.
	Route string `json:"route,omitempty"`
	// CreatedAt is when the order was placed.
	CreatedAt time.Time `json:"createdAt"`
	// AssignedAt is when a driver was assigned, nil until then.
	AssignedAt *time.Time `json:"assignedAt,omitempty"`
}

// Assigned reports whether the order has a driver.
func (o Order) Assigned() bool {
	return o.Driver != ""
}
