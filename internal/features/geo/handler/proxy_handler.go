package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"logisafe/internal/core/config"
	"logisafe/internal/core/httpclient"
	"logisafe/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProxyHandler forwards maps-API queries upstream with the server-held API
// key appended, so the key never reaches the browser.
type ProxyHandler struct {
	client *http.Client
	config config.MapsConfig
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(cfg config.MapsConfig) *ProxyHandler {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ProxyHandler{
		client: httpclient.NewClient(timeout),
		config: cfg,
	}
}

// Proxy godoc
// @Summary Proxy a maps API request
// @Description Forwards the query to the upstream maps API sub-endpoint named by the endpoint parameter, appending the API key.
// @Tags maps
// @Produce json
// @Param endpoint query string true "Maps API sub-endpoint, e.g. geocode or distancematrix"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /maps/proxy [get]
func (h *ProxyHandler) Proxy(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	endpoint := c.Query("endpoint")
	if endpoint == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "endpoint parameter is required",
			RayID:   rayID,
		})
	}

	params := url.Values{}
	for key, values := range c.Queries() {
		if key == "endpoint" || key == "key" {
			continue
		}
		params.Set(key, values)
	}
	params.Set("key", h.config.APIKey)

	upstream := fmt.Sprintf("%s/%s/json?%s", h.config.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(c.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid proxy request",
			RayID:   rayID,
		})
	}

	resp, err := h.client.Do(req)
	if err != nil {
		logger.Named("geo").Error("Maps proxy request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: "failed to reach maps provider",
			RayID:   rayID,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: fmt.Sprintf("maps provider returned status %d", resp.StatusCode),
			RayID:   rayID,
		})
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: "malformed maps provider response",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(payload)
}
