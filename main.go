package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"savanna/config"
	"savanna/jobs"
	"savanna/routes"
	"savanna/services"
	"savanna/services/logger"
	"savanna/storage"
	"savanna/validator"
)

func main() {
	config.LoadEnv()
	validator.RegisterCustomValidators()

	app, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	store := storage.NewStore(app.DB)
	if config.GetEnvDefault("AUTO_MIGRATE", "true") == "true" {
		if err := store.Migrate(); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	jobs.SetBookingSweeper(services.NewBookingService(store, logger.NewDefaultLogger(logger.InfoLevel)))
	jobs.InitCronJobs(app.Cron, app.Melody)

	config.InitWebSocket(app.Router, app.Melody)
	routes.SetupRoutes(app, store)

	app.Router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	port := config.GetEnvDefault("PORT", "8080")
	if err := app.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
