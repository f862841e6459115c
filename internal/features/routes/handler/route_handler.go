package handler

import (
	"errors"
	"net/http"

	"logisafe/internal/core/logger"
	"logisafe/internal/features/routes/domain"
	"logisafe/internal/features/routes/ports"
	"logisafe/internal/features/routes/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteHandler handles HTTP requests for route optimization.
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(s *service.RouteService) *RouteHandler {
	return &RouteHandler{service: s}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// OptimizeRequest is the request body for route optimization.
type OptimizeRequest struct {
	// StartLocation is the origin name.
	StartLocation string `json:"startLocation"`
	// EndLocation is the destination name.
	EndLocation string `json:"endLocation"`
	// Stops are optional intermediate stops.
	Stops []string `json:"stops"`
	// CargoType drives the base risk factor.
	CargoType string `json:"cargoType"`
	// UseGemini requests the extended four-variant output.
	UseGemini bool `json:"useGemini"`
}

// Optimize godoc
// @Summary Optimize a route
// @Description Generates labeled route variants (fastest/safest and, in extended mode, economical/balanced) for a delivery.
// @Tags routes
// @Accept json
// @Produce json
// @Param request body OptimizeRequest true "Optimize request"
// @Success 200 {object} map[string]domain.RouteVariant
// @Failure 400 {object} ErrorResponse
// @Router /routes/optimize [post]
func (h *RouteHandler) Optimize(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	var req OptimizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}

	mode := domain.ModeBasic
	if req.UseGemini {
		mode = domain.ModeExtended
	}

	variants, err := h.service.Optimize(c.Context(), ports.OptimizeRequest{
		Origin:      req.StartLocation,
		Destination: req.EndLocation,
		Stops:       req.Stops,
		CargoType:   domain.CargoType(req.CargoType),
		Mode:        mode,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingLocation) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "startLocation and endLocation are required",
				RayID:   rayID,
			})
		}

		logger.Named("routes").Error("Route optimization failed",
			zap.String("origin", req.StartLocation),
			zap.String("destination", req.EndLocation),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to optimize route",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(variants)
}
