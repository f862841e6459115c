package handler

import (
	"errors"
	"net/http"

	"logisafe/internal/core/logger"
	"logisafe/internal/core/session"
	"logisafe/internal/features/assignment/domain"
	"logisafe/internal/features/assignment/service"
	driverservice "logisafe/internal/features/drivers/service"
	orderservice "logisafe/internal/features/orders/service"
	routedomain "logisafe/internal/features/routes/domain"
	routeservice "logisafe/internal/features/routes/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssignmentHandler handles HTTP requests for the assignment workflow.
type AssignmentHandler struct {
	manager *service.WorkflowManager
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(m *service.WorkflowManager) *AssignmentHandler {
	return &AssignmentHandler{manager: m}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GenerateRequest is the request body for route generation.
type GenerateRequest struct {
	StartLocation string   `json:"startLocation"`
	EndLocation   string   `json:"endLocation"`
	Stops         []string `json:"stops"`
	CargoType     string   `json:"cargoType"`
	UseGemini     bool     `json:"useGemini"`
	OrderID       string   `json:"orderId"`
}

// SelectRequest is the request body for route selection.
type SelectRequest struct {
	Route string `json:"route"`
}

// AssignRequest is the request body for driver assignment.
type AssignRequest struct {
	DriverID string `json:"driverId"`
}

// HistoryResponse wraps the assignment log.
type HistoryResponse struct {
	Records []domain.AssignmentRecord `json:"records"`
}

// Generate godoc
// @Summary Generate route variants
// @Description Starts a fresh workflow with generated variants; the safest route is pre-selected.
// @Tags assignment
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Generation parameters"
// @Success 200 {object} domain.Workflow
// @Failure 400 {object} ErrorResponse
// @Router /assignment/generate [post]
func (h *AssignmentHandler) Generate(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)
	sess, _ := session.FromCtx(c)

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}

	mode := routedomain.ModeBasic
	if req.UseGemini {
		mode = routedomain.ModeExtended
	}

	flow, err := h.manager.Generate(c.Context(), sess.UserID, service.GenerateInput{
		Origin:      req.StartLocation,
		Destination: req.EndLocation,
		Stops:       req.Stops,
		CargoType:   routedomain.CargoType(req.CargoType),
		Mode:        mode,
		OrderID:     req.OrderID,
	})
	if err != nil {
		if errors.Is(err, routeservice.ErrMissingLocation) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "startLocation and endLocation are required",
				RayID:   rayID,
			})
		}

		logger.Named("assignment").Error("Route generation failed",
			zap.String("user_id", sess.UserID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to generate routes",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(flow)
}

// Select godoc
// @Summary Select a route variant
// @Tags assignment
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Variant key"
// @Success 200 {object} domain.Workflow
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /assignment/select [post]
func (h *AssignmentHandler) Select(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)
	sess, _ := session.FromCtx(c)

	var req SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}

	flow, err := h.manager.Select(sess.UserID, routedomain.VariantKey(req.Route))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownVariant):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		case errors.Is(err, service.ErrInvalidState):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		}

		logger.Named("assignment").Error("Route selection failed",
			zap.String("user_id", sess.UserID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to select route",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(flow)
}

// Assign godoc
// @Summary Assign the selected route to a driver
// @Description Admin only. Validates driver availability and appends to the assignment log. Returns 202 when the durable writes failed.
// @Tags assignment
// @Accept json
// @Produce json
// @Param request body AssignRequest true "Driver ID"
// @Success 200 {object} service.AssignResult
// @Success 202 {object} service.AssignResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /assignment/assign [post]
func (h *AssignmentHandler) Assign(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)
	sess, _ := session.FromCtx(c)

	var req AssignRequest
	if err := c.BodyParser(&req); err != nil || req.DriverID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "driverId is required",
			RayID:   rayID,
		})
	}

	result, err := h.manager.Assign(c.Context(), sess.UserID, req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoRouteSelected),
			errors.Is(err, service.ErrDriverUnavailable),
			errors.Is(err, driverservice.ErrDriverNotFound),
			errors.Is(err, orderservice.ErrOrderNotFound),
			errors.Is(err, orderservice.ErrInvalidTransition):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		case errors.Is(err, service.ErrAlreadyAssigned), errors.Is(err, service.ErrInvalidState):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		}

		logger.Named("assignment").Error("Driver assignment failed",
			zap.String("user_id", sess.UserID),
			zap.String("driver_id", req.DriverID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to assign driver",
			RayID:   rayID,
		})
	}

	status := http.StatusOK
	if !result.Durable {
		status = http.StatusAccepted
	}
	return c.Status(status).JSON(result)
}

// Reset godoc
// @Summary Reset the workflow
// @Tags assignment
// @Produce json
// @Success 200 {object} domain.Workflow
// @Router /assignment/reset [post]
func (h *AssignmentHandler) Reset(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	return c.Status(http.StatusOK).JSON(h.manager.Reset(sess.UserID))
}

// Snapshot godoc
// @Summary Get the current workflow
// @Tags assignment
// @Produce json
// @Success 200 {object} domain.Workflow
// @Router /assignment [get]
func (h *AssignmentHandler) Snapshot(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	return c.Status(http.StatusOK).JSON(h.manager.Snapshot(sess.UserID))
}

// History godoc
// @Summary Get the assignment log
// @Description Admin only.
// @Tags assignment
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /assignment/history [get]
func (h *AssignmentHandler) History(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	records, err := h.manager.History(c.Context())
	if err != nil {
		logger.Named("assignment").Error("Failed to read assignment log",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to fetch assignment history",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(HistoryResponse{Records: records})
}
