package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"eju-quiz/internal/config"
	"eju-quiz/internal/database"
	"eju-quiz/internal/handler"
	"eju-quiz/internal/logger"
	"eju-quiz/internal/middleware"
	"eju-quiz/internal/repository"
	"eju-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database and apply the startup schema checks
	db, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.InitSchema(context.Background(), db); err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}
	appLogger.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Initialize repository, services and handlers
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	quizService := service.NewQuizService(questionRepository)
	adminService := service.NewAdminService(questionRepository)
	quizHandler := handler.NewQuizHandler(quizService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Create Fiber app with the HTML views engine
	engine := html.New(cfg.Templates.Dir, ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(recover.New())

	handler.RegisterRoutes(app, quizHandler, adminHandler)

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
