package main

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/saathi-app/saathi/internal/config"
	"github.com/saathi-app/saathi/internal/database"
	"github.com/saathi-app/saathi/internal/handlers"
	"github.com/saathi-app/saathi/internal/middleware"
	"github.com/saathi-app/saathi/internal/recommend"
	"github.com/saathi-app/saathi/internal/services"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load the supplier catalog into the recommendation engine
	engine, err := recommend.New(context.Background(), database.NewCatalogSource(db))
	if err != nil {
		if errors.Is(err, recommend.ErrCatalogUnavailable) {
			log.Fatalf("Supplier catalog unavailable: %v (run the seeder to load sample suppliers)", err)
		}
		log.Fatalf("Failed to initialize recommendation engine: %v", err)
	}
	log.Printf("Recommendation engine loaded %d suppliers", engine.CatalogSize())

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    12 * 1024 * 1024,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Create handler with dependencies
	h := handlers.New(db, cfg, engine)

	// Bill scanning needs object storage and a local tesseract install;
	// run without it when either is missing.
	initBillProcessing(h, cfg)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	api := app.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.AuthRequired(cfg), h.GetCurrentUser)
	auth.Post("/refresh", middleware.AuthRequired(cfg), h.RefreshToken)

	// Supplier catalog routes (public read, supplier-only profile)
	suppliers := api.Group("/suppliers")
	suppliers.Get("/", h.ListSuppliers)
	suppliers.Get("/top", h.TopRatedSuppliers)
	suppliers.Get("/price-tiers", h.PriceTiers)
	suppliers.Get("/me", middleware.AuthRequired(cfg), middleware.SupplierRequired(), h.GetMySupplierProfile)
	suppliers.Put("/me", middleware.AuthRequired(cfg), middleware.SupplierRequired(), h.UpdateMySupplierProfile)

	// Vendor profile routes
	vendors := api.Group("/vendors", middleware.AuthRequired(cfg), middleware.VendorRequired())
	vendors.Get("/me", h.GetMyVendorProfile)
	vendors.Put("/me", h.UpdateMyVendorProfile)

	// Recommendation routes (vendor only)
	recommendations := api.Group("/recommendations", middleware.AuthRequired(cfg), middleware.VendorRequired())
	recommendations.Get("/", h.GetRecommendations)
	recommendations.Post("/preview", h.PreviewRecommendations)

	// Bill scanning routes (authenticated, only when processing is wired)
	if h.BillProcessingEnabled() {
		bills := api.Group("/bills", middleware.AuthRequired(cfg))
		bills.Post("/", h.UploadBill)
		bills.Get("/", h.ListBills)
		bills.Get("/:id", h.GetBill)
	}

	// Assistant routes (authenticated)
	chat := api.Group("/chat", middleware.AuthRequired(cfg))
	chat.Post("/", h.Chat)
	chat.Get("/history", h.ChatHistory)
	chat.Get("/tips", h.BusinessTips)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func initBillProcessing(h *handlers.Handler, cfg *config.Config) {
	if !cfg.StorageConfigured() {
		log.Println("S3 credentials not configured, bill scanning disabled")
		return
	}

	storageService, err := services.NewStorageService(
		cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Region, cfg.S3UseSSL,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize storage service: %v", err)
		return
	}

	if err := storageService.EnsureBucket(context.Background()); err != nil {
		log.Printf("Warning: Failed to ensure bill bucket exists: %v", err)
	}

	ocrService, err := services.NewOCRService()
	if err != nil {
		log.Printf("Warning: Failed to initialize OCR service: %v", err)
		return
	}

	h.EnableBillProcessing(storageService, ocrService)
	log.Println("Bill scanning service initialized")
}
