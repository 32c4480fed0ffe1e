package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/vyapaar-tech/orderbot-backend/internal/handlers"
	"github.com/vyapaar-tech/orderbot-backend/internal/middleware"
	"github.com/vyapaar-tech/orderbot-backend/internal/services"
	"github.com/vyapaar-tech/orderbot-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, conversation *services.ConversationService, twilioService *services.TwilioService, checkDatabase func() error) {
	whatsappHandler := handlers.NewWhatsAppHandler(conversation, twilioService)
	catalogHandler := handlers.NewCatalogHandler(store)
	orderHandler := handlers.NewOrderHandler(store)
	healthHandler := handlers.NewHealthHandler(conversation, twilioService != nil, checkDatabase)

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to OrderBot Backend!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":        "/health",
				"api":           "/api",
				"webhook":       "/webhook/whatsapp",
				"test_whatsapp": "/test/whatsapp",
			},
		})
	})

	app.Get("/health", healthHandler.Health)

	// API routes
	api := app.Group("/api")

	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Post("/", catalogHandler.CreateProduct)

	orders := api.Group("/orders")
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/sender/:sender", orderHandler.GetOrdersBySender)
	orders.Get("/:id", orderHandler.GetOrder)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: skip signature validation for ngrok
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
		if os.Getenv("ENVIRONMENT") == "development" {
			println("⚠️  WhatsApp webhook validation DISABLED for development")
		}
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(), whatsappHandler.HandleWebhook)
	}

	// Test WhatsApp endpoint (for development)
	app.Post("/test/whatsapp", whatsappHandler.HandleTestWebhook)
}
