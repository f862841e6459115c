package handler

import (
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"

	"logisafe/internal/features/routes/adapters"
	"logisafe/internal/features/routes/domain"
	"logisafe/internal/features/routes/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	source := adapters.NewSimulatedSource(rand.New(rand.NewSource(42)))
	handler := NewRouteHandler(service.NewRouteService(source))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/routes/optimize", handler.Optimize)
	return app
}

// TestRouteHandler_Optimize_MumbaiPuneElectronics exercises the documented
// end-to-end scenario: electronics cargo must yield a riskier fastest route
// with populated risk areas.
func TestRouteHandler_Optimize_MumbaiPuneElectronics(t *testing.T) {
	app := newTestApp(t)

	body := `{"startLocation":"Mumbai","endLocation":"Pune","cargoType":"electronics"}`
	req := httptest.NewRequest("POST", "/routes/optimize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var variants map[domain.VariantKey]domain.RouteVariant
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&variants))

	require.Contains(t, variants, domain.VariantFastest)
	require.Contains(t, variants, domain.VariantSafest)

	fastest := variants[domain.VariantFastest]
	safest := variants[domain.VariantSafest]

	assert.Less(t, safest.RiskScore, fastest.RiskScore)
	assert.Greater(t, fastest.RiskScore, 0.6)
	assert.NotEmpty(t, fastest.RiskAreas)
	assert.Contains(t, fastest.Path, "Mumbai")
	assert.Contains(t, fastest.Path, "Pune")
}

// TestRouteHandler_Optimize_MissingLocations verifies the 400 rejection path.
func TestRouteHandler_Optimize_MissingLocations(t *testing.T) {
	app := newTestApp(t)

	body := `{"startLocation":"","endLocation":"Pune","cargoType":"electronics"}`
	req := httptest.NewRequest("POST", "/routes/optimize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Message, "startLocation and endLocation are required")
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestRouteHandler_Optimize_ExtendedMode verifies useGemini returns four variants.
func TestRouteHandler_Optimize_ExtendedMode(t *testing.T) {
	app := newTestApp(t)

	body := `{"startLocation":"Delhi","endLocation":"Jaipur","cargoType":"clothing","useGemini":true}`
	req := httptest.NewRequest("POST", "/routes/optimize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var variants map[domain.VariantKey]domain.RouteVariant
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&variants))
	assert.Len(t, variants, 4)
}

// TestRouteHandler_Optimize_InvalidBody verifies malformed JSON is rejected.
func TestRouteHandler_Optimize_InvalidBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/routes/optimize", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
