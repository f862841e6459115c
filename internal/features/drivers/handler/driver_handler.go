package handler

import (
	"net/http"

	"logisafe/internal/features/drivers/domain"
	"logisafe/internal/features/drivers/service"

	"github.com/gofiber/fiber/v2"
)

// DriverHandler serves the fleet roster.
type DriverHandler struct {
	service *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(s *service.DriverService) *DriverHandler {
	return &DriverHandler{service: s}
}

// DriversResponse wraps the roster.
type DriversResponse struct {
	Drivers []domain.Driver `json:"drivers"`
}

// LocationsResponse wraps the fleet map markers.
type LocationsResponse struct {
	Drivers []domain.DriverLocation `json:"drivers"`
}

// List godoc
// @Summary List drivers
// @Description Returns the fleet roster with availability.
// @Tags drivers
// @Produce json
// @Success 200 {object} DriversResponse
// @Router /drivers [get]
func (h *DriverHandler) List(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(DriversResponse{Drivers: h.service.List()})
}

// Locations godoc
// @Summary Get driver locations
// @Description Returns one map marker per fleet vehicle.
// @Tags drivers
// @Produce json
// @Success 200 {object} LocationsResponse
// @Router /drivers/locations [get]
func (h *DriverHandler) Locations(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(LocationsResponse{Drivers: h.service.Locations()})
}
