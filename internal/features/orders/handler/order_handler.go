package handler

import (
	"errors"
	"net/http"

	"logisafe/internal/core/logger"
	"logisafe/internal/core/session"
	"logisafe/internal/features/orders/domain"
	"logisafe/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CreateOrderRequest is the request body for order creation.
type CreateOrderRequest struct {
	Customer            string  `json:"customer"`
	PickupLocation      string  `json:"pickupLocation"`
	DeliveryLocation    string  `json:"deliveryLocation"`
	CargoType           string  `json:"cargoType"`
	WeightKG            float64 `json:"weightKg"`
	SpecialInstructions string  `json:"specialInstructions"`
}

// UpdateStatusRequest is the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrdersResponse wraps the order list.
type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}

// Create godoc
// @Summary Create an order
// @Description Creates a new Pending order. Admin only.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order fields"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}

	order, err := h.service.Create(c.Context(), service.CreateOrderInput{
		Customer:            req.Customer,
		PickupLocation:      req.PickupLocation,
		DeliveryLocation:    req.DeliveryLocation,
		CargoType:           req.CargoType,
		WeightKG:            req.WeightKG,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingField) || errors.Is(err, service.ErrInvalidCargoType) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		}

		logger.Named("orders").Error("Failed to create order",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to create order",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// List godoc
// @Summary List orders
// @Description Admins see every order; a driver session sees only orders assigned to them.
// @Tags orders
// @Produce json
// @Success 200 {object} OrdersResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)
	sess, _ := session.FromCtx(c)

	orders, err := h.service.List(c.Context(), sess)
	if err != nil {
		logger.Named("orders").Error("Failed to list orders",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to fetch orders",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(OrdersResponse{Orders: orders})
}

// Get godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)
	sess, _ := session.FromCtx(c)

	order, err := h.service.Get(c.Context(), sess, c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "order not found",
				RayID:   rayID,
			})
		}
		if errors.Is(err, service.ErrNotOrderOwner) {
			return c.Status(http.StatusForbidden).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		}

		logger.Named("orders").Error("Failed to get order",
			zap.String("order_id", c.Params("id")),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to fetch order",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// UpdateStatus godoc
// @Summary Update an order's status
// @Description Applies a status change guarded by the delivery state machine. A driver session may only update orders assigned to them.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)
	sess, _ := session.FromCtx(c)

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}

	order, err := h.service.UpdateStatus(c.Context(), sess, c.Params("id"), domain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "order not found",
				RayID:   rayID,
			})
		case errors.Is(err, service.ErrNotOrderOwner):
			return c.Status(http.StatusForbidden).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		case errors.Is(err, service.ErrInvalidTransition):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		}

		logger.Named("orders").Error("Failed to update order status",
			zap.String("order_id", c.Params("id")),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to update order",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}
