package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message sends a flat JSON body carrying only a message field.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// OK sends a 200 response with the given payload.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

// Created sends a 201 message response.
func Created(c *gin.Context, message string) {
	Message(c, http.StatusCreated, message)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	Message(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, message string) {
	Message(c, http.StatusConflict, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, message)
}
