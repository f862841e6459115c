package handler

import (
	"net/http"

	"logisafe/internal/core/logger"
	"logisafe/internal/features/riskzones/domain"
	"logisafe/internal/features/riskzones/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ZoneHandler handles HTTP requests for risk zones.
type ZoneHandler struct {
	service *service.RiskZoneService
}

// NewZoneHandler creates a new ZoneHandler.
func NewZoneHandler(s *service.RiskZoneService) *ZoneHandler {
	return &ZoneHandler{service: s}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ZonesResponse wraps the zone list.
type ZonesResponse struct {
	RiskZones []domain.RiskZone `json:"riskZones"`
}

// GenerateRequest is the request body for zone generation.
type GenerateRequest struct {
	// Query is free text naming the area of interest, e.g. a route corridor.
	Query string `json:"query"`
}

// List godoc
// @Summary List risk zones
// @Description Returns the seeded risk zones followed by every generated one.
// @Tags risk-zones
// @Produce json
// @Success 200 {object} ZonesResponse
// @Failure 500 {object} ErrorResponse
// @Router /risk-zones [get]
func (h *ZoneHandler) List(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	zones, err := h.service.List(c.Context())
	if err != nil {
		logger.Named("riskzones").Error("Failed to list risk zones",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to fetch risk zones",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(ZonesResponse{RiskZones: zones})
}

// Generate godoc
// @Summary Generate a risk zone
// @Description Creates a zone for the first known city mentioned in the query and appends it to the store.
// @Tags risk-zones
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Generate request"
// @Success 200 {object} ZonesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /risk-zones [post]
func (h *ZoneHandler) Generate(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}

	zone, err := h.service.GenerateForQuery(c.Context(), req.Query)
	if err != nil {
		logger.Named("riskzones").Error("Failed to generate risk zone",
			zap.String("query", req.Query),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to fetch crime data",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(ZonesResponse{RiskZones: []domain.RiskZone{zone}})
}
