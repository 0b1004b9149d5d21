package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelbooking/config"
	"hotelbooking/models"
	"hotelbooking/response"
)

// GetProfile returns the authenticated user's record.
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID.(uint)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// GetUserByID returns a user record by id.
func GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}
