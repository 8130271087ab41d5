package config

import (
	"os"

	"FoodShare-Server/internal/api/handlers"
	"FoodShare-Server/internal/api/routes"
	"FoodShare-Server/internal/middleware"
	"FoodShare-Server/internal/utils"
	"FoodShare-Server/pkg/food"
	"FoodShare-Server/pkg/request"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func NewApp(mdb *MongoDB, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// access log to file
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	db := mdb.Database()

	// Repository
	foodRepository := food.NewFoodRepository(db, log)
	requestRepository := request.NewRequestRepository(db, log)

	// Service
	foodService := food.NewFoodService(foodRepository)
	requestService := request.NewRequestService(requestRepository, foodRepository, log)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		FoodHandler:    foodHandler,
		RequestHandler: requestHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
