package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"emretopal/cv-analiz/internal/config"
	"emretopal/cv-analiz/internal/handlers"
	"emretopal/cv-analiz/internal/render"
	"emretopal/cv-analiz/internal/services"
	"emretopal/cv-analiz/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	parser := services.NewDocumentParserService()
	ollamaService := services.NewOllamaService(cfg.Ollama.URL, cfg.Ollama.Timeout)
	log.Println("✅ Services initialized successfully")

	// Gemini is optional; without an API key only local models are served.
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		var err error
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, Gemini models disabled")
	}

	analyzerService := services.NewAnalyzerService(
		parser,
		ollamaService,
		geminiService,
		cfg.Analyzer.MaxPromptChars,
	)
	sysinfoService := services.NewSystemInfoService()
	log.Println("✅ Analyzer service initialized")

	// Initialize the session engine
	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatalf("❌ Failed to parse result templates: %v", err)
	}

	analyzerBaseURL := cfg.Analyzer.BaseURL
	if analyzerBaseURL == "" {
		analyzerBaseURL = fmt.Sprintf("http://localhost:%s", cfg.Server.Port)
	}
	analyzeClient := session.NewAnalyzeClient(analyzerBaseURL, cfg.Analyzer.RequestTimeout)

	manager := session.NewManager(storageService)
	controller := session.NewController(
		manager,
		analyzeClient,
		renderer,
		cfg.Analyzer.DefaultModel,
		cfg.Progress.TickInterval,
	)
	log.Println("✅ Session engine initialized")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		manager,
		controller,
		cfg.Storage.MaxFileSize,
	)
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		storageService,
		cfg.Storage.MaxFileSize,
		cfg.Analyzer.DefaultModel,
	)
	sessionHandler := handlers.NewSessionHandler(controller)
	systemHandler := handlers.NewSystemHandler(sysinfoService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Analiz API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	app.Post("/analyze-cv", analyzeHandler.HandleAnalyzeCV)

	api := app.Group("/api")
	api.Get("/system-info", systemHandler.HandleSystemInfo)
	api.Get("/models", analyzeHandler.HandleModels)
	api.Get("/settings/labels", systemHandler.HandleSettingsLabels)

	sess := api.Group("/session")
	sess.Post("/file", uploadHandler.HandleSelect)
	sess.Get("/file", uploadHandler.HandleGet)
	sess.Delete("/file", uploadHandler.HandleRemove)
	sess.Post("/analyze", sessionHandler.HandleAnalyze)
	sess.Get("/progress", sessionHandler.HandleProgress)
	sess.Get("/result", sessionHandler.HandleResult)

	// Health check
	api.Get("/v1/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Analiz API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /analyze-cv",
				"GET /api/system-info",
				"GET /api/models",
				"POST /api/session/file",
				"POST /api/session/analyze",
				"GET /api/session/progress",
				"GET /api/session/result",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
