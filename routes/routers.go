package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelbooking/constants"
	"hotelbooking/controllers"
	middlewares "hotelbooking/middleware"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	router.Use(middlewares.ErrorHandler())

	notifier := notification.NewService(m, logger.NewDefaultLogger(logger.InfoLevel))

	roomController := controllers.NewRoomController(db, redisCli)
	reservationController := controllers.NewReservationController(db, notifier)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
	v1.GET("/users/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetUserByID)

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.GET("/rooms/search", roomController.SearchRooms)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.DeleteRoom)

	v1.POST("/reservations", reservationController.CreateReservation)
	v1.GET("/reservations", reservationController.GetReservations)
	v1.GET("/reservations/:id", reservationController.GetReservationDetail)
	v1.PUT("/reservations/:id/cancel", reservationController.CancelReservation)
	v1.GET("/reservationHistory", middlewares.AuthMiddleware(), reservationController.GetReservationsByUser)
}
