package service

import (
	"errors"
	"fmt"

	"logisafe/internal/features/drivers/domain"
	geodomain "logisafe/internal/features/geo/domain"
)

// ErrDriverNotFound is returned when a driver ID is not in the roster.
var ErrDriverNotFound = errors.New("driver not found")

// DriverService serves the static fleet roster.
type DriverService struct {
	fleet []domain.Driver
}

// NewDriverService creates a DriverService over the static roster.
func NewDriverService() *DriverService {
	return &DriverService{fleet: domain.Fleet()}
}

// List returns every driver.
func (s *DriverService) List() []domain.Driver {
	out := make([]domain.Driver, len(s.fleet))
	copy(out, s.fleet)
	return out
}

// Get returns the driver with the given ID.
func (s *DriverService) Get(id string) (domain.Driver, error) {
	for _, d := range s.fleet {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Driver{}, fmt.Errorf("%w: %s", ErrDriverNotFound, id)
}

// Locations returns one map marker per driver, positioned at the
// coordinates of the vehicle's last reported city.
func (s *DriverService) Locations() []domain.DriverLocation {
	markers := make([]domain.DriverLocation, 0, len(s.fleet))
	for _, d := range s.fleet {
		coords, _ := geodomain.Resolve(d.CurrentLocation)
		markers = append(markers, domain.DriverLocation{
			ID:          d.ID,
			Name:        d.Name,
			Vehicle:     d.Vehicle,
			Coordinates: coords,
		})
	}
	return markers
}
