package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"logisafe/internal/core/session"
	"logisafe/internal/features/orders/domain"
	routedomain "logisafe/internal/features/routes/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminSession() session.Session {
	return session.Session{UserID: "admin-1", Role: session.RoleAdmin}
}

func driverSession(id string) session.Session {
	return session.Session{UserID: id, Role: session.RoleDriver}
}

// memoryOrderRepository is an in-memory OrderRepository for testing.
type memoryOrderRepository struct {
	orders    []domain.Order
	saveError error
}

func (m *memoryOrderRepository) Save(ctx context.Context, order domain.Order) error {
	if m.saveError != nil {
		return m.saveError
	}
	for i := range m.orders {
		if m.orders[i].ID == order.ID {
			m.orders[i] = order
			return nil
		}
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *memoryOrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (m *memoryOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return m.orders, nil
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Customer:         "Tata Electronics",
		PickupLocation:   "Mumbai",
		DeliveryLocation: "Pune",
		CargoType:        "electronics",
		WeightKG:         1200,
	}
}

func TestOrderService_Create(t *testing.T) {
	repo := &memoryOrderRepository{}
	svc := NewOrderService(repo)

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, strings.ToUpper(order.ID), order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Empty(t, order.Driver)
	assert.Nil(t, order.AssignedAt)
	assert.Len(t, repo.orders, 1)
}

func TestOrderService_Create_NormalizesCargo(t *testing.T) {
	svc := NewOrderService(&memoryOrderRepository{})

	in := validInput()
	in.CargoType = "Perishable Goods"

	order, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, routedomain.CargoPerishable, order.CargoType)
}

func TestOrderService_Create_Validation(t *testing.T) {
	svc := NewOrderService(&memoryOrderRepository{})
	ctx := context.Background()

	in := validInput()
	in.Customer = ""
	_, err := svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrMissingField)

	in = validInput()
	in.CargoType = "livestock"
	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidCargoType)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	svc := NewOrderService(&memoryOrderRepository{})

	_, err := svc.Get(context.Background(), adminSession(), "ORD-9999")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_Get_DriverOwnership(t *testing.T) {
	repo := &memoryOrderRepository{orders: []domain.Order{
		{ID: "ORD-0001", Status: domain.StatusInTransit, Driver: "D003"},
	}}
	svc := NewOrderService(repo)
	ctx := context.Background()

	// The assigned driver and any admin may read the order.
	order, err := svc.Get(ctx, driverSession("D003"), "ORD-0001")
	require.NoError(t, err)
	assert.Equal(t, "D003", order.Driver)

	_, err = svc.Get(ctx, adminSession(), "ORD-0001")
	require.NoError(t, err)

	// Another driver may not.
	_, err = svc.Get(ctx, driverSession("D002"), "ORD-0001")
	assert.ErrorIs(t, err, ErrNotOrderOwner)
}

func TestOrderService_List_DriverSeesOnlyOwnOrders(t *testing.T) {
	repo := &memoryOrderRepository{}
	svc := NewOrderService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	all, err := svc.List(ctx, adminSession())
	require.NoError(t, err)
	assert.Len(t, all, 5)

	own, err := svc.List(ctx, driverSession("D003"))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "ORD-003", own[0].ID)

	// Unassigned orders belong to no driver.
	none, err := svc.List(ctx, driverSession("D004"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := &memoryOrderRepository{}
	svc := NewOrderService(repo)
	ctx := context.Background()

	order, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, adminSession(), order.ID, domain.StatusInTransit)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, updated.Status)

	// Pending is not reachable from In Transit.
	_, err = svc.UpdateStatus(ctx, adminSession(), order.ID, domain.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Unknown statuses are rejected before the lookup.
	_, err = svc.UpdateStatus(ctx, adminSession(), order.ID, domain.Status("Lost"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderService_UpdateStatus_DriverOwnership(t *testing.T) {
	repo := &memoryOrderRepository{orders: []domain.Order{
		{ID: "ORD-0001", Status: domain.StatusInTransit, Driver: "D003"},
	}}
	svc := NewOrderService(repo)
	ctx := context.Background()

	// A driver cannot move an order assigned to someone else.
	_, err := svc.UpdateStatus(ctx, driverSession("D002"), "ORD-0001", domain.StatusDelivered)
	assert.ErrorIs(t, err, ErrNotOrderOwner)
	assert.Equal(t, domain.StatusInTransit, repo.orders[0].Status)

	// The assigned driver can.
	updated, err := svc.UpdateStatus(ctx, driverSession("D003"), "ORD-0001", domain.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, updated.Status)
}

func TestOrderService_MarkAssigned(t *testing.T) {
	repo := &memoryOrderRepository{}
	svc := NewOrderService(repo)
	ctx := context.Background()

	order, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	assigned, err := svc.MarkAssigned(ctx, order.ID, "D002", "safest")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInTransit, assigned.Status)
	assert.Equal(t, "D002", assigned.Driver)
	assert.Equal(t, "safest", assigned.Route)
	require.NotNil(t, assigned.AssignedAt)
}

func TestOrderService_MarkAssigned_DeliveredOrder(t *testing.T) {
	repo := &memoryOrderRepository{orders: []domain.Order{{
		ID:     "ORD-0001",
		Status: domain.StatusDelivered,
	}}}
	svc := NewOrderService(repo)

	_, err := svc.MarkAssigned(context.Background(), "ORD-0001", "D002", "safest")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderService_SeedDefaults(t *testing.T) {
	repo := &memoryOrderRepository{}
	svc := NewOrderService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))
	assert.Len(t, repo.orders, 5)

	// Seeding is idempotent once the collection is populated.
	require.NoError(t, svc.SeedDefaults(ctx))
	assert.Len(t, repo.orders, 5)
}

func TestOrderService_Create_SaveError(t *testing.T) {
	svc := NewOrderService(&memoryOrderRepository{saveError: errors.New("redis down")})

	_, err := svc.Create(context.Background(), validInput())
	assert.Error(t, err)
}
