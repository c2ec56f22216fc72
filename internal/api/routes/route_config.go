package routes

import (
	"Food-Traceability-Backend/domain"
	"Food-Traceability-Backend/internal/api/handlers"
	"Food-Traceability-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	TraceabilityHandler handlers.TraceabilityHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.HealthCheck()
	c.FoodRecords()
}

func (c *Config) HealthCheck() {
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(domain.GenericResponse{
			Status:  "success",
			Message: domain.MessageSuccessHealthCheck,
		})
	})
}

func (c *Config) FoodRecords() {
	foodRecords := c.App.Group("/api/food-records")
	{
		foodRecords.Post("", c.TraceabilityHandler.CreateFoodRecord)
		foodRecords.Get("", c.TraceabilityHandler.GetFoodRecords)
		foodRecords.Get("/:product_id", c.TraceabilityHandler.GetFoodRecordDetail)
	}
}
