package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foxxcyber/billscan/internal/config"
	"github.com/foxxcyber/billscan/internal/database"
	"github.com/foxxcyber/billscan/internal/handlers"
	"github.com/foxxcyber/billscan/internal/middleware"
	"github.com/foxxcyber/billscan/internal/observability"
	"github.com/foxxcyber/billscan/internal/services"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    cfg.MaxUploadBytes() + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	if cfg.MetricsEnabled {
		app.Use(observability.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	storage := initStorage(cfg)
	ocr := initOCR(cfg)
	if ocr != nil {
		defer ocr.Close()
	}

	var recognizer services.TextRecognizer
	if ocr != nil {
		recognizer = ocr
	}
	var objectStore services.ObjectStore
	if storage != nil {
		objectStore = storage
	}

	billService := services.NewBillService(db, recognizer, objectStore, cfg.PresignExpiry)
	noteService := services.NewNoteService(db)

	billHandler := handlers.NewBillHandler(cfg, billService)
	noteHandler := handlers.NewNoteHandler(noteService)
	categoryHandler := handlers.NewCategoryHandler(db)

	app.Get("/health", handlers.Health(db))

	api := app.Group("/api")
	auth := middleware.AuthRequired(cfg)
	scanLimiter := middleware.NewLimiter(cfg.ScanRatePerMinute, cfg.ScanRateBurst)

	// Stateless extraction
	api.Post("/bills/parse", billHandler.ParseText)
	api.Post("/notes/classify", noteHandler.Classify)
	api.Get("/categories", categoryHandler.ListCategories)

	// Stored bills
	api.Post("/bills", auth, billHandler.CreateFromText)
	api.Post("/bills/scan", auth, middleware.RateLimit(scanLimiter), billHandler.ScanImage)
	api.Get("/bills", auth, billHandler.ListBills)
	api.Get("/bills/export.xlsx", auth, billHandler.ExportBills)
	api.Get("/bills/:id", auth, billHandler.GetBill)
	api.Get("/bills/:id/image", auth, billHandler.GetBillImage)
	api.Delete("/bills/:id", auth, billHandler.DeleteBill)

	// Stored notes
	api.Post("/notes", auth, noteHandler.CreateNote)
	api.Get("/notes", auth, noteHandler.ListNotes)
	api.Get("/notes/:id", auth, noteHandler.GetNote)

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Warning: shutdown did not complete cleanly: %v", err)
	}
}

// initStorage connects to S3; receipt images are not kept when it is unavailable
func initStorage(cfg *config.Config) *services.StorageService {
	if !cfg.S3Enabled {
		log.Println("Receipt image storage is disabled")
		return nil
	}
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		log.Println("S3 credentials not configured, receipt images will not be stored")
		return nil
	}

	storage, err := services.NewStorageService(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Region, cfg.S3UseSSL)
	if err != nil {
		log.Printf("Warning: Failed to initialize storage service: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := storage.EnsureBucket(ctx); err != nil {
		log.Printf("Warning: Failed to ensure bucket exists: %v", err)
		return nil
	}

	log.Printf("Receipt storage initialized (bucket: %s)", storage.GetBucketName())
	return storage
}

// initOCR starts tesseract; image scanning returns 503 when it is unavailable
func initOCR(cfg *config.Config) *services.OCRService {
	if !cfg.OCREnabled {
		log.Println("OCR is disabled, receipt scanning unavailable")
		return nil
	}

	ocr, err := services.NewOCRService(cfg.OCRLanguages)
	if err != nil {
		log.Printf("Warning: Failed to initialize OCR service: %v", err)
		return nil
	}

	log.Printf("OCR initialized (languages: %s)", cfg.OCRLanguages)
	return ocr
}
