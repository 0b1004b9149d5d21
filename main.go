package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/config"
	"hotelbooking/jobs"
	"hotelbooking/models"
	"hotelbooking/routes"
	"hotelbooking/services"
	"hotelbooking/services/logger"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.Room{}, &models.User{}, &models.Reservation{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	roomService := services.NewRoomService(config.DB, config.RedisClient)
	syncAdapter := services.NewRoomStatusSyncAdapter(roomService, logger.NewDefaultLogger(logger.InfoLevel))
	jobs.SetRoomStatusSyncer(syncAdapter)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
