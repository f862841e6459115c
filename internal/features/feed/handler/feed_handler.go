package handler

import (
	"net/http"

	"logisafe/internal/features/feed/domain"

	"github.com/gofiber/fiber/v2"
)

// FeedHandler serves the live risk feed.
type FeedHandler struct {
	log *domain.Log
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(log *domain.Log) *FeedHandler {
	return &FeedHandler{log: log}
}

// FeedResponse wraps the feed entries.
type FeedResponse struct {
	Entries []domain.FeedEntry `json:"entries"`
}

// Get godoc
// @Summary Get the live risk feed
// @Description Returns up to the 10 most recent feed entries, newest first.
// @Tags feed
// @Produce json
// @Success 200 {object} FeedResponse
// @Router /feed [get]
func (h *FeedHandler) Get(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(FeedResponse{Entries: h.log.Entries()})
}
