package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizgen/internal/adapter"
	"quizgen/internal/adapter/pdfextract"
	"quizgen/internal/adapter/quizgen"
	"quizgen/internal/cache"
	"quizgen/internal/config"
	"quizgen/internal/database"
	"quizgen/internal/domain"
	"quizgen/internal/handler"
	"quizgen/internal/logger"
	"quizgen/internal/middleware"
	"quizgen/internal/repository"
	"quizgen/internal/service"
	"quizgen/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that tags each request with a ULID and logs it
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := util.NewULID()
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(cfg.Database.URL)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Postgres")

	// Initialize repositories
	questionRepository := repository.NewSQLXQuestionRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)

	// Initialize question generator and PDF extractor
	generator, err := quizgen.NewOpenAIQuestionGenerator(cfg.LLM, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create question generator", zap.Error(err))
	}
	extractor := pdfextract.NewPDFExtractor()

	// Initialize optional Redis cache
	var cacheService domain.CacheService
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheService = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	} else {
		appLogger.Info("Redis not configured; category cache disabled")
	}

	// Initialize services
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	questionService := service.NewQuestionService(questionRepository, generator, extractor, cacheService, cfg.Redis)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	questionHandler := handler.NewQuestionHandler(questionService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// Auth routes
	authGroup := app.Group("/auth")
	authGroup.Get("/google", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Get("/me", middleware.Protected(authService), authHandler.GetMe)

	// Generation and question routes
	apiGroup := app.Group("/api")
	apiGroup.Post("/generate/topic", middleware.OptionalAuth(authService), questionHandler.GenerateFromTopic)
	apiGroup.Post("/generate/pdf", middleware.OptionalAuth(authService), questionHandler.GenerateFromPDF)
	apiGroup.Get("/questions", questionHandler.ListQuestions)
	apiGroup.Get("/questions/:id", questionHandler.GetQuestion)
	apiGroup.Delete("/questions/:id", middleware.Protected(authService), questionHandler.DeleteQuestion)
	apiGroup.Get("/categories", questionHandler.GetCategories)

	// Static admin page and service banner
	app.Static("/admin", "./static/admin.html")
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Quiz Generator API",
			"admin":   "/admin",
		})
	})

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
