package adapters

import (
	"context"
	"testing"
	"time"

	"logisafe/internal/core/cache"
	"logisafe/internal/features/orders/domain"
	routedomain "logisafe/internal/features/routes/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisOrderRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return NewRedisOrderRepository(c)
}

func testOrder(id string) domain.Order {
	return domain.Order{
		ID:               id,
		Customer:         "Tata Electronics",
		PickupLocation:   "Mumbai",
		DeliveryLocation: "Pune",
		CargoType:        routedomain.CargoElectronics,
		WeightKG:         1200,
		Status:           domain.StatusPending,
		CreatedAt:        time.Now().Truncate(time.Millisecond),
	}
}

func TestRedisOrderRepository_ListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRedisOrderRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testOrder("ORD-0001")))
	require.NoError(t, repo.Save(ctx, testOrder("ORD-0002")))

	order, err := repo.Get(ctx, "ORD-0001")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "Tata Electronics", order.Customer)

	missing, err := repo.Get(ctx, "ORD-9999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRedisOrderRepository_SaveUpserts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	order := testOrder("ORD-0001")
	require.NoError(t, repo.Save(ctx, order))

	order.Status = domain.StatusInTransit
	order.Driver = "D002"
	require.NoError(t, repo.Save(ctx, order))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusInTransit, orders[0].Status)
	assert.Equal(t, "D002", orders[0].Driver)
}
