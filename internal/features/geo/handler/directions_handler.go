package handler

import (
	"errors"
	"net/http"

	"logisafe/internal/features/geo/domain"
	"logisafe/internal/features/geo/service"

	"github.com/gofiber/fiber/v2"
)

// DirectionsHandler handles HTTP requests for path lookups.
type DirectionsHandler struct {
	service *service.DirectionsService
}

// NewDirectionsHandler creates a new DirectionsHandler.
func NewDirectionsHandler(s *service.DirectionsService) *DirectionsHandler {
	return &DirectionsHandler{service: s}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// DirectionsRequest is the request body for a directions lookup.
type DirectionsRequest struct {
	// Origin is the start location name.
	Origin string `json:"origin"`
	// Destination is the end location name.
	Destination string `json:"destination"`
	// Waypoints are optional intermediate stops.
	Waypoints []string `json:"waypoints"`
	// TravelMode defaults to "driving".
	TravelMode string `json:"travelMode"`
	// Variant selects the midpoint offset used for the synthetic fallback.
	Variant string `json:"variant"`
}

// DirectionsResult is the response body for a directions lookup.
type DirectionsResult struct {
	// Synthetic is true when the provider was unavailable and the payload
	// was generated locally.
	Synthetic bool `json:"synthetic"`
	// Directions is the provider-shaped payload.
	Directions *domain.DirectionsResponse `json:"directions"`
	// Path is the flattened polyline of the first route.
	Path domain.Path `json:"path"`
}

// GetDirections godoc
// @Summary Get directions
// @Description Fetches a drivable path from the maps provider. On provider failure a synthetic 3-point path is returned with synthetic=true.
// @Tags maps
// @Accept json
// @Produce json
// @Param request body DirectionsRequest true "Directions request"
// @Success 200 {object} DirectionsResult
// @Failure 400 {object} ErrorResponse
// @Router /maps/directions [post]
func (h *DirectionsHandler) GetDirections(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	var req DirectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}

	directions, synthetic, err := h.service.GetDirections(c.Context(), req.Origin, req.Destination, req.Waypoints, req.TravelMode, req.Variant)
	if err != nil {
		if errors.Is(err, service.ErrMissingEndpoint) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "origin and destination are required",
				RayID:   rayID,
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	points := directions.FlattenPath()
	path := domain.Path{
		Points:    points,
		Synthetic: synthetic,
		Summary:   req.Origin + " to " + req.Destination,
	}

	return c.Status(http.StatusOK).JSON(DirectionsResult{
		Synthetic:  synthetic,
		Directions: directions,
		Path:       path,
	})
}
