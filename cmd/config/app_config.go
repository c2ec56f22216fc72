package config

import (
	"Food-Traceability-Backend/internal/api/handlers"
	"Food-Traceability-Backend/internal/api/routes"
	"Food-Traceability-Backend/internal/middleware"
	"Food-Traceability-Backend/internal/utils"
	"Food-Traceability-Backend/pkg/traceability"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	traceabilityRepository := traceability.NewTraceabilityRepository(db)

	// Service
	traceabilityService := traceability.NewTraceabilityService(traceabilityRepository)

	// Handler
	traceabilityHandler := handlers.NewTraceabilityHandler(traceabilityService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		TraceabilityHandler: traceabilityHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
