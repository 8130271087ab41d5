package main

import (
	"os"
	"os/signal"
	"syscall"

	"FoodShare-Server/cmd/config"
	"FoodShare-Server/internal/utils"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Named("foodshare")

	utils.LoadConfig()

	mdb, err := config.ConnectDB(log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	app, err := config.NewApp(mdb, log)
	if err != nil {
		log.Fatal("Failed to initialize app", zap.Error(err))
	}

	// Handle graceful shutdown
	go func() {
		sc := make(chan os.Signal, 1)
		signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
		<-sc
		log.Info("Received shutdown signal, gracefully shutting down...")

		if err := app.Shutdown(); err != nil {
			log.Error("Server shutdown failed", zap.Error(err))
		}
		if err := mdb.Disconnect(); err != nil {
			log.Error("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	if err := app.Listen(":" + utils.GetConfig("PORT")); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}

	log.Info("Server shut down successfully")
}
