package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vyapaar-tech/orderbot-backend/internal/services"
)

// HealthHandler reports service status for monitoring.
type HealthHandler struct {
	conversation    *services.ConversationService
	twilioAvailable bool
	checkDatabase   func() error
}

// NewHealthHandler creates a new health handler. checkDatabase may be nil
// when running on the in-memory store.
func NewHealthHandler(conversation *services.ConversationService, twilioAvailable bool, checkDatabase func() error) *HealthHandler {
	return &HealthHandler{
		conversation:    conversation,
		twilioAvailable: twilioAvailable,
		checkDatabase:   checkDatabase,
	}
}

// Health returns overall service health.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK

	dbHealthy := true
	if h.checkDatabase != nil {
		if err := h.checkDatabase(); err != nil {
			dbHealthy = false
			status = "unhealthy"
			statusCode = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status": status,
		"services": fiber.Map{
			"database":        dbHealthy,
			"twilio":          h.twilioAvailable,
			"active_sessions": h.conversation.Sessions().Count(),
		},
	})
}
