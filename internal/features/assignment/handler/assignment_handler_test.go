package handler

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"

	"logisafe/internal/core/session"
	"logisafe/internal/features/assignment/domain"
	"logisafe/internal/features/assignment/service"
	driverservice "logisafe/internal/features/drivers/service"
	riskzadapters "logisafe/internal/features/riskzones/adapters"
	riskservice "logisafe/internal/features/riskzones/service"
	routeadapters "logisafe/internal/features/routes/adapters"
	routeservice "logisafe/internal/features/routes/service"

	"logisafe/internal/core/cache"
	assignmentadapters "logisafe/internal/features/assignment/adapters"
	orderadapters "logisafe/internal/features/orders/adapters"
	orderservice "logisafe/internal/features/orders/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the full assignment stack over miniredis.
func newTestApp(t *testing.T) (*fiber.App, *orderservice.OrderService) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	routeSvc := routeservice.NewRouteService(routeadapters.NewSimulatedSource(rand.New(rand.NewSource(5))))
	zoneSvc := riskservice.NewRiskZoneService(riskzadapters.NewRedisZoneRepository(store), nil, rand.New(rand.NewSource(5)))
	orderSvc := orderservice.NewOrderService(orderadapters.NewRedisOrderRepository(store))
	recordLog := assignmentadapters.NewRedisRecordLog(store)

	manager := service.NewWorkflowManager(routeSvc, driverservice.NewDriverService(), orderSvc, zoneSvc, recordLog)
	h := NewAssignmentHandler(manager)

	app := fiber.New()
	app.Use(session.Middleware())
	app.Get("/assignment", h.Snapshot)
	app.Post("/assignment/generate", h.Generate)
	app.Post("/assignment/select", h.Select)
	app.Post("/assignment/assign", session.RequireRole(session.RoleAdmin), h.Assign)
	app.Post("/assignment/reset", h.Reset)

	return app, orderSvc
}

// send performs a request with session headers and returns status and body.
func send(t *testing.T, app *fiber.App, method, target, body, role, userID string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-Role", role)
	req.Header.Set("X-User-Id", userID)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestAssignmentHandler_GenerateAssignFlow(t *testing.T) {
	app, orderSvc := newTestApp(t)

	order, err := orderSvc.Create(context.Background(), orderservice.CreateOrderInput{
		Customer:         "Tata Electronics",
		PickupLocation:   "Mumbai",
		DeliveryLocation: "Pune",
		CargoType:        "electronics",
	})
	require.NoError(t, err)

	body := `{"startLocation":"Mumbai","endLocation":"Pune","cargoType":"electronics","orderId":"` + order.ID + `"}`
	status, respBody := send(t, app, "POST", "/assignment/generate", body, "admin", "admin-1")
	require.Equal(t, fiber.StatusOK, status)

	var flow domain.Workflow
	require.NoError(t, json.Unmarshal(respBody, &flow))
	assert.Equal(t, domain.StateVariantsGenerated, flow.State)
	assert.Equal(t, "safest", string(flow.Selected))

	status, respBody = send(t, app, "POST", "/assignment/assign", `{"driverId":"D002"}`, "admin", "admin-1")
	require.Equal(t, fiber.StatusOK, status)

	var result service.AssignResult
	require.NoError(t, json.Unmarshal(respBody, &result))
	assert.True(t, result.Durable)
	assert.Equal(t, "D002", result.Record.DriverID)

	updated, err := orderSvc.Get(context.Background(), session.Session{UserID: "admin-1", Role: session.RoleAdmin}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "D002", updated.Driver)
	assert.Equal(t, "safest", updated.Route)
}

func TestAssignmentHandler_AssignRequiresAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := send(t, app, "POST", "/assignment/assign", `{"driverId":"D002"}`, "driver", "D001")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestAssignmentHandler_RequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/assignment", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAssignmentHandler_BusyDriverRejected(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"startLocation":"Mumbai","endLocation":"Pune","cargoType":"electronics"}`
	status, _ := send(t, app, "POST", "/assignment/generate", body, "admin", "admin-1")
	require.Equal(t, fiber.StatusOK, status)

	status, respBody := send(t, app, "POST", "/assignment/assign", `{"driverId":"D001"}`, "admin", "admin-1")
	assert.Equal(t, fiber.StatusBadRequest, status)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(respBody, &errResp))
	assert.Contains(t, errResp.Message, "driver unavailable")
}

func TestAssignmentHandler_Reset(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"startLocation":"Delhi","endLocation":"Jaipur","cargoType":"furniture"}`
	status, _ := send(t, app, "POST", "/assignment/generate", body, "driver", "D001")
	require.Equal(t, fiber.StatusOK, status)

	status, respBody := send(t, app, "POST", "/assignment/reset", "", "driver", "D001")
	require.Equal(t, fiber.StatusOK, status)

	var flow domain.Workflow
	require.NoError(t, json.Unmarshal(respBody, &flow))
	assert.Equal(t, domain.StateIdle, flow.State)
}
