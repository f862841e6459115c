package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	routedomain "logisafe/internal/features/routes/domain"

	"logisafe/internal/core/session"
	"logisafe/internal/features/orders/domain"
	"logisafe/internal/features/orders/ports"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when the order ID is unknown.
	ErrOrderNotFound = errors.New("order not found")
	// ErrMissingField is returned when a required creation field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidCargoType is returned for cargo outside the known table.
	ErrInvalidCargoType = errors.New("invalid cargo type")
	// ErrInvalidTransition is returned for a status change the state machine forbids.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotOrderOwner is returned when a driver session touches an order
	// assigned to another driver.
	ErrNotOrderOwner = errors.New("order assigned to another driver")
)

// CreateOrderInput carries the fields of a new order.
type CreateOrderInput struct {
	Customer            string
	PickupLocation      string
	DeliveryLocation    string
	CargoType           string
	WeightKG            float64
	SpecialInstructions string
}

// OrderService manages the order collection.
type OrderService struct {
	repo ports.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo ports.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create validates the input and stores a new Pending order.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (domain.Order, error) {
	if in.Customer == "" || in.PickupLocation == "" || in.DeliveryLocation == "" {
		return domain.Order{}, fmt.Errorf("%w: customer, pickupLocation and deliveryLocation are required", ErrMissingField)
	}

	cargo := normalizeCargo(in.CargoType)
	if !cargo.Valid() {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrInvalidCargoType, in.CargoType)
	}

	order := domain.Order{
		ID:                  newOrderID(),
		Customer:            in.Customer,
		PickupLocation:      in.PickupLocation,
		DeliveryLocation:    in.DeliveryLocation,
		CargoType:           cargo,
		WeightKG:            in.WeightKG,
		SpecialInstructions: in.SpecialInstructions,
		Status:              domain.StatusPending,
		CreatedAt:           time.Now(),
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("service: failed to save order: %w", err)
	}

	return order, nil
}

// Get returns the order with the given ID. A driver session may only read
// orders assigned to them; admins are unrestricted.
func (s *OrderService) Get(ctx context.Context, sess session.Session, id string) (domain.Order, error) {
	order, err := s.get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !sess.IsAdmin() && order.Driver != sess.UserID {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrNotOrderOwner, id)
	}
	return order, nil
}

// get fetches an order without the ownership check, for internal callers.
func (s *OrderService) get(ctx context.Context, id string) (domain.Order, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("service: failed to get order: %w", err)
	}
	if order == nil {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return *order, nil
}

// List returns the orders visible to the session: every order for an admin,
// only the orders assigned to them for a driver.
func (s *OrderService) List(ctx context.Context, sess session.Session) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	if sess.IsAdmin() {
		return orders, nil
	}

	own := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Driver == sess.UserID {
			own = append(own, order)
		}
	}
	return own, nil
}

// UpdateStatus applies a status change guarded by the transition table.
// A driver session may only move orders assigned to them.
func (s *OrderService) UpdateStatus(ctx context.Context, sess session.Session, id string, status domain.Status) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	order, err := s.get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	if !sess.IsAdmin() && order.Driver != sess.UserID {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrNotOrderOwner, id)
	}

	if !domain.CanTransition(order.Status, status) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	order.Status = status
	if err := s.repo.Save(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("service: failed to save order: %w", err)
	}

	return order, nil
}

// MarkAssigned binds a driver and route variant to the order and moves it
// to In Transit. Used by the assignment workflow, which is admin-gated at
// the transport layer.
func (s *OrderService) MarkAssigned(ctx context.Context, id, driverID, route string) (domain.Order, error) {
	order, err := s.get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	if !domain.CanTransition(order.Status, domain.StatusInTransit) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, domain.StatusInTransit)
	}

	now := time.Now()
	order.Driver = driverID
	order.Route = route
	order.Status = domain.StatusInTransit
	order.AssignedAt = &now

	if err := s.repo.Save(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("service: failed to save order: %w", err)
	}

	return order, nil
}

// SeedDefaults stores the demo orders when the collection is empty.
func (s *OrderService) SeedDefaults(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to list orders: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, order := range defaultOrders() {
		if err := s.repo.Save(ctx, order); err != nil {
			return fmt.Errorf("service: failed to seed order %s: %w", order.ID, err)
		}
	}
	return nil
}

// newOrderID generates an "ORD-" prefixed short identifier.
func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// normalizeCargo folds UI spellings like "Perishable Goods" onto the
// cargo table keys.
func normalizeCargo(raw string) routedomain.CargoType {
	c := strings.ToLower(strings.TrimSpace(raw))
	c = strings.TrimSuffix(c, " goods")
	return routedomain.CargoType(c)
}

// defaultOrders is the demo collection shown before any real order exists.
func defaultOrders() []domain.Order {
	now := time.Now()
	assigned := now.Add(-6 * time.Hour)
	return []domain.Order{
		{ID: "ORD-001", Customer: "Tata Electronics", PickupLocation: "Mumbai", DeliveryLocation: "Pune", CargoType: routedomain.CargoElectronics, WeightKG: 1200, Status: domain.StatusInTransit, Driver: "D001", Route: "fastest", CreatedAt: now.Add(-24 * time.Hour), AssignedAt: &assigned},
		{ID: "ORD-002", Customer: "Urban Living Co", PickupLocation: "Delhi", DeliveryLocation: "Jaipur", CargoType: routedomain.CargoFurniture, WeightKG: 800, Status: domain.StatusPending, CreatedAt: now.Add(-20 * time.Hour)},
		{ID: "ORD-003", Customer: "FreshFarm Produce", PickupLocation: "Bangalore", DeliveryLocation: "Chennai", CargoType: routedomain.CargoPerishable, WeightKG: 500, Status: domain.StatusInTransit, Driver: "D003", Route: "safest", CreatedAt: now.Add(-18 * time.Hour), AssignedAt: &assigned},
		{ID: "ORD-004", Customer: "Deccan Machine Works", PickupLocation: "Hyderabad", DeliveryLocation: "Vijayawada", CargoType: routedomain.CargoMachinery, WeightKG: 2400, Status: domain.StatusDelayed, CreatedAt: now.Add(-30 * time.Hour)},
		{ID: "ORD-005", Customer: "Eastern Textiles", PickupLocation: "Kolkata", DeliveryLocation: "Siliguri", CargoType: routedomain.CargoClothing, WeightKG: 650, Status: domain.StatusDelivered, Driver: "D005", Route: "balanced", CreatedAt: now.Add(-48 * time.Hour), AssignedAt: &assigned},
	}
}
