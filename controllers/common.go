package controllers

import (
	"github.com/gin-gonic/gin"

	"hotelbooking/errors"
	"hotelbooking/response"
)

// handleServiceError maps an AppError code onto the right HTTP status.
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeBookingConflict, errors.ErrCodeUserExists, errors.ErrCodeDBDuplicate:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeRoomNotFound, errors.ErrCodeUserNotFound, errors.ErrCodeDBNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken, errors.ErrCodeInvalidPassword:
		response.Unauthorized(c)
	case errors.ErrCodeDBError:
		response.ServerError(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}
