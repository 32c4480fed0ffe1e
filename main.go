package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/vyapaar-tech/orderbot-backend/database"
	"github.com/vyapaar-tech/orderbot-backend/internal/models"
	"github.com/vyapaar-tech/orderbot-backend/internal/routes"
	"github.com/vyapaar-tech/orderbot-backend/internal/services"
	"github.com/vyapaar-tech/orderbot-backend/internal/session"
	"github.com/vyapaar-tech/orderbot-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		err := godotenv.Load(".env")
		if err != nil {
			err = godotenv.Load("environments/.env.development")
			if err != nil {
				log.Println("⚠️  No .env file found - checking environment variables")
			}
		}
	}

	// Initialize storage
	var store storage.Store
	var checkDatabase func() error

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect()

		log.Println("🔄 Running database migrations...")
		if err := database.DB.AutoMigrate(
			&models.Product{},
			&models.Order{},
		); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL database storage")

		checkDatabase = func() error {
			sqlDB, err := database.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		}
	}
	storage.SetStore(store)

	if os.Getenv("SEED_PRODUCTS") == "true" {
		seedProducts(store)
	}

	// Initialize Twilio service (optional in development)
	twilioService, err := services.NewTwilioService()
	if err != nil {
		log.Printf("⚠️  Twilio not configured - replies will be logged only: %v", err)
		twilioService = nil
	} else {
		log.Println("✅ Twilio service initialized")
	}

	// Conversation engine with its in-memory session registry
	sessions := session.NewMemoryStore()
	conversation := services.NewConversationService(store, sessions)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "OrderBot Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	routes.SetupRoutes(app, store, conversation, twilioService, checkDatabase)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 OrderBot Backend starting on port %s", port)
	log.Printf("📊 Storage: %s", storageType())
	log.Printf("📱 WhatsApp: %s", whatsappStatus(twilioService))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

// seedProducts loads a small default catalog so the bot has something to
// sell on a fresh store. Existing entries are kept.
func seedProducts(store storage.Store) {
	defaults := []models.Product{
		{Name: "प्लेट", Price: 5},
		{Name: "कप", Price: 3},
		{Name: "गिलास", Price: 4},
	}

	existing, err := store.ListProducts()
	if err != nil {
		log.Printf("⚠️  Could not read catalog for seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	for i := range defaults {
		if _, err := store.CreateProduct(&defaults[i]); err != nil {
			log.Printf("⚠️  Could not seed product %s: %v", defaults[i].Name, err)
		}
	}
	log.Printf("🌱 Seeded %d default products", len(defaults))
}

func storageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func whatsappStatus(t *services.TwilioService) string {
	if t == nil {
		return "Not configured"
	}
	return "Configured"
}
