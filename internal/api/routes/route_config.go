package routes

import (
	"FoodShare-Server/internal/api/handlers"
	"FoodShare-Server/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	FoodHandler    handlers.FoodHandler
	RequestHandler handlers.RequestHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Root()
	c.Foods()
	c.FoodRequests()
}

func (c *Config) Root() {
	c.App.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("Mongo DB Connection Success")
	})
}

func (c *Config) Foods() {
	c.App.Get("/foods", c.FoodHandler.GetFoods)
	c.App.Get("/all-foods", c.FoodHandler.GetAllFoods)
	c.App.Get("/my-foods", c.FoodHandler.GetMyFoods)
	c.App.Get("/foods/:id", c.FoodHandler.GetFoodByID)
	c.App.Post("/foods", c.FoodHandler.AddFood)
	c.App.Patch("/foods/:id", c.FoodHandler.UpdateFood)
	c.App.Delete("/foods/:id", c.FoodHandler.DeleteFood)
}

func (c *Config) FoodRequests() {
	c.App.Get("/foodRequest/:id", c.RequestHandler.GetRequestsByFood)
	c.App.Post("/foodRequest/:id", c.RequestHandler.AddRequest)
	c.App.Get("/food-requests-all/:foodId", c.RequestHandler.GetAllRequestsByFood)
	c.App.Get("/my-all-food-requests", c.RequestHandler.GetMyRequests)
	c.App.Patch("/foodRequestAccept/:id", c.RequestHandler.AcceptRequest)
	c.App.Patch("/foodRequestReject/:id", c.RequestHandler.RejectRequest)
	c.App.Delete("/myFoodRequest/:id", c.RequestHandler.DeleteRequest)
}
