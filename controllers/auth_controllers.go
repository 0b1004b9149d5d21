package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelbooking/config"
	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/response"
	"hotelbooking/services"
)

const accessTokenMinutes = 60 * 24 * 3

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(config.DB, input.Email)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, accessTokenMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   toUserResponse(user),
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, err := services.CreateUser(config.DB, models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, gin.H{"id": user.ID})
}

func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	payload, err := services.VerifyGoogleIDToken(c.Request.Context(), input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser, err := services.GoogleUserFromClaims(payload.Claims)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", services.NormalizeEmail(googleUser.Email)).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(config.DB, googleUser.Name, googleUser.Email)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, accessTokenMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   toUserResponse(user),
		"accessToken": accessToken,
	})
}
