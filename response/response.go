package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes a paged result set.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success returns a 200 with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "success",
		Data: data,
	})
}

// Created returns a 201 with the created entity.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "created",
		Data: data,
	})
}

// SuccessWithPagination returns a 200 with data and paging info.
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// BadRequest returns a 400 with a message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// ValidationError returns a 400 for failed input validation.
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Unauthorized returns a 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "unauthorized",
	})
}

// Forbidden returns a 403.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "forbidden",
	})
}

// NotFound returns a 404 with a message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict returns a 409 with a message.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError returns a 500.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "internal server error",
	})
}
