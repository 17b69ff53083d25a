package utils

import (
	"net/http"

	"marketplace/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// DomainError maps a domain error to its HTTP response. Unknown errors
// (store failures during a reservation) become a generic 500.
func DomainError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	switch models.ErrorCode(err) {
	case models.CodeInvalidRange:
		status, message = http.StatusBadRequest, "invalid time range"
	case models.CodeConflict:
		status, message = http.StatusConflict, "schedule conflict"
	case models.CodeSlotTaken:
		status, message = http.StatusConflict, "slot already booked"
	case models.CodeNotFound:
		status, message = http.StatusNotFound, "not found"
	case models.CodeStaleReference:
		status, message = http.StatusConflict, "referenced record no longer exists"
	}

	JSONError(c, status, message, err.Error())
}
